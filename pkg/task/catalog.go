package task

// Other is the escape-hatch label: picking it means the user supplies a free
// text label instead.
const Other = "其他"

// OtherAlias is accepted wherever Other is, for English speaking callers.
const OtherAlias = "Other"

// Categories is the fixed category enumeration offered by the wizard.
var Categories = []string{
	"工作壓力",
	"面試壓力",
	"學業考試",
	"人際關係",
	"家庭",
	"感情",
	"健康",
	"財務",
	"未來方向",
	Other,
}

// Worries is the fixed worry enumeration offered by the wizard.
var Worries = []string{
	"擔心表現",
	"害怕被拒絕",
	"擔心別人看法",
	"不確定未來",
	"失去控制感",
	"自我懷疑",
	"感到孤單",
	"覺得疲憊",
	"意外的變化",
	Other,
}

var (
	knownCategories = setOf(Categories)
	knownWorries    = setOf(Worries)
)

// IsKnownCategory reports whether label belongs to the fixed enumeration.
// The Other label itself is not a category anyone stores, so it is not known.
func IsKnownCategory(label string) bool {
	_, ok := knownCategories[label]
	return ok && label != Other
}

// IsKnownWorry reports whether label belongs to the worry enumeration.
func IsKnownWorry(label string) bool {
	_, ok := knownWorries[label]
	return ok && label != Other
}

// IsOther reports whether label names the Other bucket.
func IsOther(label string) bool {
	return label == Other || label == OtherAlias
}

func setOf(list []string) map[string]struct{} {
	out := make(map[string]struct{}, len(list))
	for _, s := range list {
		out[s] = struct{}{}
	}
	return out
}
