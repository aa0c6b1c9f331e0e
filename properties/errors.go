package properties

import "errors"

// ErrDomainNotDefined is returned by properties with a minimum-n domain
// requirement outside of which they are mathematically undefined (e.g.
// hubiness for n<=3), per spec.md §7's "numerical impossibility" error
// class.
var ErrDomainNotDefined = errors.New("properties: domain not defined for this input")
