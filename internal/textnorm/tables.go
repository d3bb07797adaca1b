package textnorm

// synonymRule rewrites every occurrence of Pattern to Canonical.
// Rules run in order and each rule sees the output of the previous one,
// so chains of near-synonyms converge onto one canonical phrase.
type synonymRule struct {
	Pattern   string
	Canonical string
}

// synonymRules is matched against trimmed, case/diacritic-folded text.
// Patterns must therefore be lower case. Canonical phrases must be fixed
// points: no later pattern may appear inside an earlier canonical.
var synonymRules = []synonymRule{
	// Financial hardship converges in two steps: colloquial phrases fold
	// to "no money" first, then "no money" folds to the canonical phrase.
	{Pattern: "flat broke", Canonical: "no money"},
	{Pattern: "short of cash", Canonical: "no money"},
	{Pattern: "手头很紧", Canonical: "没钱"},
	{Pattern: "手头紧", Canonical: "没钱"},
	{Pattern: "没有钱", Canonical: "没钱"},
	{Pattern: "经济困难", Canonical: "没钱"},
	{Pattern: "没钱", Canonical: "no money"},
	{Pattern: "no money", Canonical: "financial hardship"},
	{Pattern: "struggling financially", Canonical: "financial hardship"},

	// Housing
	{Pattern: "nowhere to live", Canonical: "housing need"},
	{Pattern: "租不起", Canonical: "housing need"},
	{Pattern: "没地方住", Canonical: "housing need"},

	// Healthcare
	{Pattern: "medical bills", Canonical: "medical cost"},
	{Pattern: "hospital fees", Canonical: "medical cost"},
	{Pattern: "医药费", Canonical: "medical cost"},
	{Pattern: "看病贵", Canonical: "medical cost"},

	// Seniors
	{Pattern: "elderly parent", Canonical: "elderly care"},
	{Pattern: "年长者", Canonical: "elderly care"},
	{Pattern: "老人家", Canonical: "elderly care"},

	// Disability
	{Pattern: "行动不便", Canonical: "disability support"},
	{Pattern: "残障", Canonical: "disability support"},

	// Legal
	{Pattern: "打官司", Canonical: "legal help"},
	{Pattern: "律师费", Canonical: "legal help"},
	{Pattern: "法律问题", Canonical: "legal help"},

	// Mental wellbeing
	{Pattern: "feeling down", Canonical: "mental wellbeing"},
	{Pattern: "cannot cope", Canonical: "mental wellbeing"},
	{Pattern: "压力很大", Canonical: "mental wellbeing"},
	{Pattern: "心情不好", Canonical: "mental wellbeing"},
}

// stopwords is the bilingual stopword set removed after tokenization.
// Chinese entries are single characters because Chinese runs are tokenized
// per character by default.
var stopwords = map[string]struct{}{
	// English pronouns, articles, auxiliaries, filler
	"i": {}, "im": {}, "ive": {}, "me": {}, "my": {}, "we": {}, "our": {},
	"you": {}, "your": {}, "he": {}, "she": {}, "it": {}, "they": {},
	"a": {}, "an": {}, "the": {}, "this": {}, "that": {}, "these": {},
	"is": {}, "am": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"do": {}, "does": {}, "did": {}, "dont": {}, "have": {}, "has": {}, "had": {},
	"to": {}, "of": {}, "in": {}, "on": {}, "at": {}, "for": {}, "from": {},
	"and": {}, "or": {}, "but": {}, "so": {}, "with": {}, "about": {},
	"can": {}, "will": {}, "would": {}, "please": {}, "need": {}, "want": {},
	// Contraction remnants left after punctuation stripping ("can't" -> "can t")
	"t": {}, "s": {}, "m": {}, "d": {}, "re": {}, "ve": {}, "ll": {},

	// Chinese pronouns, particles, filler
	"我": {}, "你": {}, "他": {}, "她": {}, "它": {}, "们": {},
	"的": {}, "了": {}, "是": {}, "在": {}, "有": {}, "个": {},
	"吗": {}, "呢": {}, "吧": {}, "啊": {}, "哦": {}, "嗯": {},
	"就": {}, "都": {}, "也": {}, "很": {}, "和": {}, "与": {},
	"这": {}, "那": {}, "或": {}, "而": {},
}
