package convert

// Rule maps a pair of required substrings in the user's description to a
// field assignment. Both terms must appear (case-insensitively) for the
// rule to fire.
type Rule struct {
	Path  string
	Terms [2]string
	Value interface{}
}

// Rules is evaluated strictly in declaration order. The rules are
// independent checks, not an exclusive chain: when several rules targeting
// the same field all fire, the one declared last wins. Downstream behavior
// depends on this tie-break, so the order is part of the contract.
var Rules = []Rule{
	{Path: "appearance.theme", Terms: [2]string{"theme", "light"}, Value: "light"},
	{Path: "appearance.theme", Terms: [2]string{"theme", "dark"}, Value: "dark"},
	{Path: "performance.level", Terms: [2]string{"performance", "high"}, Value: "high"},
	{Path: "performance.level", Terms: [2]string{"performance", "medium"}, Value: "medium"},
	{Path: "performance.level", Terms: [2]string{"performance", "low"}, Value: "low"},
	{Path: "agent_formation.optimization_enabled", Terms: [2]string{"agent", "optimization"}, Value: true},
	{Path: "agent_formation.optimization_enabled", Terms: [2]string{"disable", "optimization"}, Value: false},
	{Path: "integration.sync_enabled", Terms: [2]string{"sync", "enable"}, Value: true},
	{Path: "integration.sync_enabled", Terms: [2]string{"sync", "disable"}, Value: false},
}
