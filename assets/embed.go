// assets/embed.go
//
// Embedded data files shipped with the binary.
//   - words.txt: the default five-letter dictionary (answers and guesses).

package assets

import (
	"embed"
	"io/fs"
)

//go:embed words.txt
var FS embed.FS

// WordsFile is the name of the embedded dictionary inside FS.
const WordsFile = "words.txt"

// OpenWords opens the embedded dictionary for reading.
func OpenWords() (fs.File, error) {
	return FS.Open(WordsFile)
}
