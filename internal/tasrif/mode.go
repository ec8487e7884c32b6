package tasrif

// Mode: 타스리프 생성 방식입니다.
type Mode string

// Mode 상수 목록입니다.
const (
	ModeIstilahi Mode = "istilahi"
	ModeLughowiy Mode = "lughowiy"
	ModeIsim     Mode = "isim"
)

// Modes: 지원하는 모드 목록입니다.
var Modes = []Mode{ModeIstilahi, ModeLughowiy, ModeIsim}

// ParseMode 는 문자열을 Mode 로 변환한다. 공백이나 대소문자가 다르면 거부한다.
func ParseMode(value string) (Mode, bool) {
	switch Mode(value) {
	case ModeIstilahi:
		return ModeIstilahi, true
	case ModeLughowiy:
		return ModeLughowiy, true
	case ModeIsim:
		return ModeIsim, true
	default:
		return "", false
	}
}
