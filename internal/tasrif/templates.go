package tasrif

// template: 라벨과 {r1}/{r2}/{r3} 자리표시자를 가진 형태 패턴입니다.
type template struct {
	label   string
	pattern string
}

// istilahiFamily1: 제1형(نَصَرَ 계열) 동사 파생 패턴입니다.
var istilahiFamily1 = []template{
	{label: "1. الفعل الماضي", pattern: "{r1}\u064e{r2}\u064e{r3}\u064e"},
	{label: "2. الفعل المضارع", pattern: "\u064a\u064e{r1}\u0652{r2}\u064f{r3}\u064f"},
	{label: "3. المصدر", pattern: "{r1}\u064e{r2}\u0652{r3}\u064b\u0627"},
	{label: "4. المصدر الميمي", pattern: "\u0645\u064e{r1}\u0652{r2}\u064e{r3}\u064b\u0627"},
	{label: "5. اسم الفاعل", pattern: "{r1}\u064e\u0627{r2}\u0650{r3}\u064c"},
	{label: "6. اسم المفعول", pattern: "\u0645\u064e{r1}\u0652{r2}\u064f\u0648{r3}\u064c"},
	{label: "7. فعل الأمر", pattern: "\u0627\u064f{r1}\u0652{r2}\u064f{r3}\u0652"},
	{label: "8. فعل النهي", pattern: "\u0644\u064e\u0627 \u062a\u064e{r1}\u0652{r2}\u064f{r3}\u0652"},
	{label: "9. اسم الزمان", pattern: "\u0645\u064e{r1}\u0652{r2}\u064e{r3}\u064c"},
	{label: "10. اسم المكان", pattern: "\u0645\u064e{r1}\u0652{r2}\u064e{r3}\u064c"},
	{label: "11. اسم الآلة", pattern: "\u0645\u0650{r1}\u0652{r2}\u064e{r3}\u064c"},
}

// istilahiFamily2: 제2형(ضَرَبَ 계열) 패턴입니다. 미완료 어간 모음이 kasra 로 바뀐다.
var istilahiFamily2 = []template{
	{label: "1. الفعل الماضي", pattern: "{r1}\u064e{r2}\u064e{r3}\u064e"},
	{label: "2. الفعل المضارع", pattern: "\u064a\u064e{r1}\u0652{r2}\u0650{r3}\u064f"},
	{label: "3. المصدر", pattern: "{r1}\u064e{r2}\u0652{r3}\u064b\u0627"},
	{label: "4. المصدر الميمي", pattern: "\u0645\u064e{r1}\u0652{r2}\u064e{r3}\u064b\u0627"},
	{label: "5. اسم الفاعل", pattern: "{r1}\u064e\u0627{r2}\u0650{r3}\u064c"},
	{label: "6. اسم المفعول", pattern: "\u0645\u064e{r1}\u0652{r2}\u064f\u0648{r3}\u064c"},
	{label: "7. فعل الأمر", pattern: "\u0627\u0650{r1}\u0652{r2}\u0650{r3}\u0652"},
	{label: "8. فعل النهي", pattern: "\u0644\u064e\u0627 \u062a\u064e{r1}\u0652{r2}\u0650{r3}\u0652"},
	{label: "9. اسم الزمان", pattern: "\u0645\u064e{r1}\u0652{r2}\u0650{r3}\u064c"},
	{label: "10. اسم المكان", pattern: "\u0645\u064e{r1}\u0652{r2}\u0650{r3}\u064c"},
	{label: "11. اسم الآلة", pattern: "\u0645\u0650{r1}\u0652{r2}\u064e{r3}\u064c"},
}

// lughowiyTemplates: 과거형 인칭 변화 패턴입니다. 대명사 순서는 고정이다.
var lughowiyTemplates = []template{
	{label: "هُوَ", pattern: "{r1}\u064e{r2}\u064e{r3}\u064e"},
	{label: "هما (م)", pattern: "{r1}\u064e{r2}\u064e{r3}\u064e\u0627"},
	{label: "هم", pattern: "{r1}\u064e{r2}\u064e{r3}\u064f\u0648\u0627"},
	{label: "هي", pattern: "{r1}\u064e{r2}\u064e{r3}\u064e\u062a\u0652"},
	{label: "هما (ف)", pattern: "{r1}\u064e{r2}\u064e{r3}\u064e\u062a\u064e\u0627"},
	{label: "هنّ", pattern: "{r1}\u064e{r2}\u064e{r3}\u0652\u0646\u064e"},
	{label: "أنتَ", pattern: "{r1}\u064e{r2}\u064e{r3}\u0652\u062a\u064e"},
	{label: "أنتما (م)", pattern: "{r1}\u064e{r2}\u064e{r3}\u0652\u062a\u064f\u0645\u064e\u0627"},
	{label: "أنتم", pattern: "{r1}\u064e{r2}\u064e{r3}\u0652\u062a\u064f\u0645\u0652"},
	{label: "أنتِ", pattern: "{r1}\u064e{r2}\u064e{r3}\u0652\u062a\u0650"},
	{label: "أنتما (ف)", pattern: "{r1}\u064e{r2}\u064e{r3}\u0652\u062a\u064f\u0645\u064e\u0627"},
	{label: "أنتنّ", pattern: "{r1}\u064e{r2}\u064e{r3}\u0652\u062a\u064f\u0646\u064e\u0651"},
	{label: "أنا", pattern: "{r1}\u064e{r2}\u064e{r3}\u0652\u062a\u064f"},
	{label: "نحن", pattern: "{r1}\u064e{r2}\u064e{r3}\u0652\u0646\u064e\u0627"},
}

// isimTemplates: فَاعِل 형 명사의 수/성 변화 패턴입니다.
var isimTemplates = []template{
	{label: "المفرد (Singular)", pattern: "{r1}\u064e\u0627{r2}\u0650{r3}\u064c"},
	{label: "المثنى المذكر (Dual Masculine)", pattern: "{r1}\u064e\u0627{r2}\u0650{r3}\u064e\u0627\u0646\u0650"},
	{label: "المثنى المؤنث (Dual Feminine)", pattern: "{r1}\u064e\u0627{r2}\u0650{r3}\u064e\u062a\u064e\u0627\u0646\u0650"},
	{label: "الجمع المذكر السالم (Sound Masculine Plural)", pattern: "{r1}\u064e\u0627{r2}\u0650{r3}\u064f\u0648\u0646\u064e"},
	{label: "الجمع المؤنث السالم (Sound Feminine Plural)", pattern: "{r1}\u064e\u0627{r2}\u0650{r3}\u064e\u0627\u062a\u064c"},
	{label: "جمع التكسير (Broken Plural)", pattern: "{r1}\u064f{r2}\u064e\u0651\u0627{r3}\u064c"},
}
