package domain

// Document is a single corpus entry. It is only consumed while building an
// index and is not retained afterwards.
type Document struct {
	ID   int
	Text string
}

// Postings maps terms to the ordered list of document IDs containing them.
// Term iteration order is insertion order, so an index built from the same
// document sequence always serialises identically. A plain Go map cannot
// guarantee that, hence the explicit order slice.
type Postings struct {
	order []string
	docs  map[string][]int
}

// NewPostings creates an empty postings mapping.
func NewPostings() *Postings {
	return &Postings{
		docs: make(map[string][]int),
	}
}

// Add appends docID to the postings list of term. A term seen for the first
// time is registered at the end of the term order. IDs already present in the
// term's list are ignored.
func (p *Postings) Add(term string, docID int) {
	ids, seen := p.docs[term]
	if !seen {
		p.order = append(p.order, term)
		p.docs[term] = []int{docID}
		return
	}
	for _, id := range ids {
		if id == docID {
			return
		}
	}
	p.docs[term] = append(ids, docID)
}

// Put replaces the whole postings list of term, registering the term at the
// end of the order if it is new. Codecs use it when reconstructing a mapping
// in file order.
func (p *Postings) Put(term string, docIDs []int) {
	if _, seen := p.docs[term]; !seen {
		p.order = append(p.order, term)
	}
	p.docs[term] = docIDs
}

// DocIDs returns the postings list of term. The returned slice is owned by
// the mapping and must not be modified.
func (p *Postings) DocIDs(term string) ([]int, bool) {
	ids, ok := p.docs[term]
	return ids, ok
}

// Terms returns all terms in insertion order. The returned slice is owned by
// the mapping and must not be modified.
func (p *Postings) Terms() []string {
	return p.order
}

// Len returns the number of distinct terms.
func (p *Postings) Len() int {
	return len(p.docs)
}

// Equal reports whether both mappings hold the same term set and, for every
// term, the same document IDs in the same list order. Term insertion order
// itself does not participate in equality.
func (p *Postings) Equal(o *Postings) bool {
	if o == nil || len(p.docs) != len(o.docs) {
		return false
	}
	for term, ids := range p.docs {
		other, ok := o.docs[term]
		if !ok || len(other) != len(ids) {
			return false
		}
		for i, id := range ids {
			if other[i] != id {
				return false
			}
		}
	}
	return true
}
