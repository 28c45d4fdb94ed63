package parser

// checkpoint captures enough of Parser's mutable state to restore it
// after a failed speculative attempt.
type checkpoint struct {
	pos          int
	ruleNames    []string
	ruleOccs     []int
	errCount     int
}

func (p *Parser) checkpoint() checkpoint {
	return checkpoint{
		pos:       p.pos,
		ruleNames: append([]string(nil), p.ruleNameStack...),
		ruleOccs:  append([]int(nil), p.ruleOccStack...),
		errCount:  len(p.errors),
	}
}

func (p *Parser) restore(c checkpoint) {
	p.pos = c.pos
	p.ruleNameStack = c.ruleNames
	p.ruleOccStack = c.ruleOccs
	p.errors = p.errors[:c.errCount]
}

// Backtrack runs body speculatively: input position and rule stack are
// restored afterwards regardless of outcome, and any recognition errors
// body would have recorded are discarded (recovery is disabled for its
// duration too, since a speculative attempt should fail cleanly rather
// than paper over a mismatch). It reports whether body succeeded.
//
// Grounded on the teacher's lr/glr/glr.go approach of exploring multiple
// parse continuations and discarding the ones that don't pan out,
// adapted here to a single explicit save/restore instead of forking a
// GLR stack.
func Backtrack(p *Parser, body func() error) bool {
	c := p.checkpoint()
	p.btDepth++
	err := body()
	p.btDepth--
	p.restore(c)
	return err == nil
}
