package gast

// Visitor receives one callback per GAST node kind encountered by Walk.
// Embed BaseVisitor to only override the callbacks of interest.
type Visitor interface {
	VisitRule(*Rule)
	VisitFlat(*Flat)
	VisitNonTerminal(*NonTerminal)
	VisitTerminal(*Terminal)
	VisitOption(*Option)
	VisitRepetition(*Repetition)
	VisitRepetitionMandatory(*RepetitionMandatory)
	VisitRepetitionWithSeparator(*RepetitionWithSeparator)
	VisitRepetitionMandatoryWithSeparator(*RepetitionMandatoryWithSeparator)
	VisitAlternation(*Alternation)
}

// BaseVisitor implements Visitor with no-op methods, so a caller can embed
// it and only override what it needs.
type BaseVisitor struct{}

func (BaseVisitor) VisitRule(*Rule)                                                       {}
func (BaseVisitor) VisitFlat(*Flat)                                                        {}
func (BaseVisitor) VisitNonTerminal(*NonTerminal)                                          {}
func (BaseVisitor) VisitTerminal(*Terminal)                                                {}
func (BaseVisitor) VisitOption(*Option)                                                    {}
func (BaseVisitor) VisitRepetition(*Repetition)                                            {}
func (BaseVisitor) VisitRepetitionMandatory(*RepetitionMandatory)                          {}
func (BaseVisitor) VisitRepetitionWithSeparator(*RepetitionWithSeparator)                   {}
func (BaseVisitor) VisitRepetitionMandatoryWithSeparator(*RepetitionMandatoryWithSeparator) {}
func (BaseVisitor) VisitAlternation(*Alternation)                                          {}

// WalkRule visits r and recursively every production nested inside it.
func WalkRule(v Visitor, r *Rule) {
	v.VisitRule(r)
	walkAll(v, r.Definition)
}

// WalkFlat visits f and recursively every production nested inside it.
func WalkFlat(v Visitor, f *Flat) {
	v.VisitFlat(f)
	walkAll(v, f.Definition)
}

// Walk visits p and recurses into its children, if any.
func Walk(v Visitor, p Production) {
	switch n := p.(type) {
	case *NonTerminal:
		v.VisitNonTerminal(n)
	case *Terminal:
		v.VisitTerminal(n)
	case *Option:
		v.VisitOption(n)
		walkAll(v, n.Definition)
	case *Repetition:
		v.VisitRepetition(n)
		walkAll(v, n.Definition)
	case *RepetitionMandatory:
		v.VisitRepetitionMandatory(n)
		walkAll(v, n.Definition)
	case *RepetitionWithSeparator:
		v.VisitRepetitionWithSeparator(n)
		walkAll(v, n.Definition)
	case *RepetitionMandatoryWithSeparator:
		v.VisitRepetitionMandatoryWithSeparator(n)
		walkAll(v, n.Definition)
	case *Alternation:
		v.VisitAlternation(n)
		for i := range n.Definition {
			WalkFlat(v, &n.Definition[i])
		}
	}
}

func walkAll(v Visitor, ps []Production) {
	for _, p := range ps {
		Walk(v, p)
	}
}
