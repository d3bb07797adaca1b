package domain

// hardProbes are evaluated as substrings of the normalized, lower-cased
// text, domain by domain in the order of All. The first matching probe
// wins regardless of match strength.
var hardProbes = map[Domain][]string{
	Financial: {
		"financial hardship", "financial assistance", "comcare",
		"cash assistance", "low income", "经济援助", "补助金",
	},
	Housing: {
		"housing need", "housing", "hdb", "rental flat", "rental",
		"pay rent", "租屋", "组屋", "房租",
	},
	Healthcare: {
		"medical cost", "hospital", "clinic", "polyclinic", "chas",
		"medifund", "medisave", "medishield", "doctor",
		"医院", "诊所", "看病", "医疗", "医生",
	},
	Seniors: {
		"elderly care", "elderly", "senior", "silver support",
		"pioneer generation", "merdeka generation",
		"老人", "乐龄", "养老",
	},
	Disability: {
		"disability support", "disability", "disabled", "wheelchair",
		"special needs", "残疾", "轮椅",
	},
	Legal: {
		"legal help", "legal aid", "lawyer", "court", "divorce",
		"法律", "律师", "离婚",
	},
	Mental: {
		"mental wellbeing", "mental health", "depression", "depressed",
		"anxiety", "anxious", "counselling", "counseling",
		"心理", "抑郁", "焦虑",
	},
}

// hints are used only by the soft fallback scorer. Each hint found as a
// literal substring of the text scores 3; token overlap with a hint
// scores 1 per token.
var hints = map[Domain][]string{
	Financial: {
		"money", "income", "afford", "bills", "debt", "savings", "cpf",
		"钱", "债务", "收入",
	},
	Housing: {
		"house", "home", "flat", "rent", "landlord", "lease", "shelter",
		"房", "住", "屋",
	},
	Healthcare: {
		"health", "medicine", "medication", "treatment", "illness", "sick",
		"病", "药", "医",
	},
	Seniors: {
		"old age", "retirement", "ageing", "caregiver", "老", "退休",
	},
	Disability: {
		"mobility", "impairment", "blind", "deaf", "autism", "障碍",
	},
	Legal: {
		"law", "legal", "rights", "contract", "dispute", "官司",
	},
	Mental: {
		"stress", "lonely", "sad", "worried", "overwhelmed", "emotions",
		"情绪", "烦",
	},
}
