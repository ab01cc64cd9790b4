package directory

import "fieldops/internal/domain"

// Lookup answers organization display questions by id. Unknown ids get a
// display-safe fallback (empty name, nil classification) instead of an
// error, so dangling back-references render harmlessly.
type Lookup map[string]OrganizationView

func NewLookup(orgs []OrganizationView) Lookup {
	l := make(Lookup, len(orgs))
	for _, org := range orgs {
		l[org.ID] = org
	}
	return l
}

func (l Lookup) Name(id string) string {
	return l[id].Name
}

func (l Lookup) Classification(id string) *domain.Classification {
	org, ok := l[id]
	if !ok || org.Classification == "" {
		return nil
	}
	c := org.Classification
	return &c
}
