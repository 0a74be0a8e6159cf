package zonk

import (
	"fmt"
	"strings"
)

var subjectReplacer = strings.NewReplacer(".", "_", " ", "_", "*", "_", ">", "_")

func GetHandRecordsKey(handID string) string {
	return fmt.Sprintf("zonk:hands:%s", handID)
}

// GetPlayerHandsSubject escapes characters that NATS treats as token
// separators or wildcards.
func GetPlayerHandsSubject(player string) string {
	return fmt.Sprintf("zonk.%s.hands", subjectReplacer.Replace(player))
}
