package tour

import "fmt"

// MatchExample maps 1 and 2 to their Korean words and everything else to
// "기타".
func MatchExample(value int) string {
	switch value {
	case 1:
		return "하나"
	case 2:
		return "둘"
	default:
		return "기타"
	}
}

func demoMatch(e env) error {
	_, err := fmt.Fprintf(e.w, "Match 문: %s\n", MatchExample(2))
	return err
}
