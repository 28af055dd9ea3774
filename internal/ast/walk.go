package ast

// Visitor is driven by Walk. Visit is called for every declaration in
// source order. If the returned Visitor w is non-nil, Walk visits the
// declaration's children with w and then calls w.Visit(nil).
type Visitor interface {
	Visit(decl Decl) (w Visitor, err error)
}

// Walk traverses the unit's declarations depth-first. The first error
// returned by a Visitor stops the walk.
func Walk(v Visitor, unit *SourceUnit) error {
	for _, d := range unit.Items {
		if err := walkDecl(v, d); err != nil {
			return err
		}
	}
	return nil
}

func walkDecl(v Visitor, d Decl) error {
	w, err := v.Visit(d)
	if err != nil || w == nil {
		return err
	}
	if c, ok := d.(*ContractDefinition); ok {
		for _, part := range c.Parts {
			if err := walkDecl(w, part); err != nil {
				return err
			}
		}
	}
	_, err = w.Visit(nil)
	return err
}
