package journal

import logging "github.com/ipfs/go-log/v2"

var log = logging.Logger("journal")

var (
	// J is a globally accessible Journal. It starts being NilJournal, and early
	// during node initialization, it is reset to whichever Journal is
	// configured (by default, the filesystem journal). Components can safely
	// record in the journal by calling: journal.J.RecordEvent(...).
	J Journal = NilJournal() // nolint
)
