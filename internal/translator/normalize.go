package translator

import "regexp"

// Speech recognition often mis-transcribes "task" in front of a number
// ("tusk 2", "desk 3", "tax 1"). The substitution runs on the raw
// utterance before it reaches the model so index references survive the
// transcription.
var taskHomophone = regexp.MustCompile(`(?i)\b(?:tusk|dusk|desk|tax|tasks|task's)\s+(\d+)\b`)

// NormalizeUtterance canonicalizes misheard "task N" references. Pure
// string substitution; everything else passes through untouched.
func NormalizeUtterance(text string) string {
	return taskHomophone.ReplaceAllString(text, "task $1")
}
