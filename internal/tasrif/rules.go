package tasrif

// DefaultRule: 표에 없는 어근에 적용되는 규칙 번호입니다.
const DefaultRule = 1

var ruleByRoot = map[string]int{
	"نصر": 1, "كتب": 1,
	"ضرب": 2, "جلس": 2,
	"فتح": 3, "ذهب": 3,
	"علم": 4, "شرب": 4,
	"كرم": 5, "حسن": 5,
	"حسب": 6, "ورث": 6,
}

// RuleFor 는 어근의 동사 규칙 번호(1~6)를 반환한다.
func RuleFor(root string) int {
	if rule, ok := ruleByRoot[root]; ok {
		return rule
	}
	return DefaultRule
}

// istilahiFamily 는 규칙 번호에 맞는 패턴 묶음을 고른다.
// 3~6 규칙은 별도 패턴이 없어 제1형을 그대로 쓴다.
func istilahiFamily(rule int) []template {
	if rule == 2 {
		return istilahiFamily2
	}
	return istilahiFamily1
}
