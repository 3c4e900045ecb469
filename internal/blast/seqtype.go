package blast

import "strings"

const (
	// the 20 standard amino acid codes
	proteinAlphabet = "ACDEFGHIKLMNPQRSTVWY"

	// nucleotides plus the IUPAC ambiguity codes
	dnaAlphabet = "GATCRYWSMKHBVDN"
)

// IsProtein reports whether every sequence in the FASTA input is made of
// standard amino acid codes.
//
// Note: a DNA sequence is also a valid protein sequence.
func IsProtein(fasta string) bool {
	return verifyAlphabet(fasta, proteinAlphabet)
}

// IsDNA reports whether every sequence in the FASTA input is made of
// nucleotide codes (IUPAC ambiguity codes included).
func IsDNA(fasta string) bool {
	return verifyAlphabet(fasta, dnaAlphabet)
}

// IsProteinNotDNA reports whether the FASTA input is a protein that can't
// be read as DNA.
func IsProteinNotDNA(fasta string) bool {
	if IsDNA(fasta) {
		return false
	}

	return IsProtein(fasta)
}

// SeqType classifies the FASTA input as "nucl", "prot" or "unknown".
// DNA wins when both alphabets fit.
func SeqType(fasta string) string {
	switch {
	case IsDNA(fasta):
		return "nucl"
	case IsProtein(fasta):
		return "prot"
	}

	return "unknown"
}

// verifyAlphabet checks every residue of every entry against letters.
func verifyAlphabet(fasta, letters string) bool {
	entries, err := readFasta(fasta)
	if err != nil {
		return false
	}

	for _, e := range entries {
		for _, letter := range e.seq {
			if !strings.ContainsRune(letters, letter) {
				return false
			}
		}
	}

	return true
}
