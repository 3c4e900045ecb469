package blast

import (
	"fmt"
	"regexp"
	"strings"
)

// entry is one record of a multi-FASTA input: its header line (without
// the '>') and its residues joined into one uppercase string.
type entry struct {
	id  string
	seq string
}

// whitespace inside sequence lines (including '\r' on windows files)
var reSpace = regexp.MustCompile(`\s`)

// readFasta parses multi-FASTA text into entries.
func readFasta(contents string) (entries []entry, err error) {
	lines := strings.Split(contents, "\n")

	// find the headers
	var headerIndices []int
	var ids []string
	for i, line := range lines {
		if strings.HasPrefix(line, ">") {
			headerIndices = append(headerIndices, i)
			ids = append(ids, strings.TrimSpace(line[1:]))
		} else if len(headerIndices) == 0 && strings.TrimSpace(line) != "" {
			return nil, fmt.Errorf("failed to parse FASTA input: line %d precedes the first header", i+1)
		}
	}

	// accumulate the sequences from between the headers
	var seqs []string
	for i, headerIndex := range headerIndices {
		nextLine := len(lines)
		if i < len(headerIndices)-1 {
			nextLine = headerIndices[i+1]
		}
		seqJoined := strings.Join(lines[headerIndex+1:nextLine], "")
		seq := reSpace.ReplaceAllString(seqJoined, "")
		seqs = append(seqs, strings.ToUpper(seq))
	}

	for i, id := range ids {
		entries = append(entries, entry{
			id:  id,
			seq: seqs[i],
		})
	}

	// opened and parsed the input but found nothing
	if len(entries) < 1 {
		return nil, fmt.Errorf("failed to parse a FASTA entry from the input")
	}

	return entries, nil
}
