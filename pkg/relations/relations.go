package relations

import (
	"context"
	"fmt"

	"github.com/carpentries/mailflow/ent"
)

// Kind identifies which domain table a generic relation points into.
type Kind string

const (
	KindEvent      Kind = "event"
	KindPerson     Kind = "person"
	KindMembership Kind = "membership"
	KindAward      Kind = "award"
	KindTask       Kind = "task"
)

// Ref is a tagged reference to a single domain object. It replaces a
// framework-level generic foreign key with an explicit (kind, id) pair.
type Ref struct {
	Kind Kind
	ID   int
}

// String implements fmt.Stringer.
func (r Ref) String() string {
	return fmt.Sprintf("%s#%d", r.Kind, r.ID)
}

// Resolve loads the domain object a Ref points to. The returned value is one
// of *ent.Event, *ent.Person, *ent.Membership, *ent.Award, *ent.Task.
func Resolve(ctx context.Context, client *ent.Client, ref Ref) (any, error) {
	switch ref.Kind {
	case KindEvent:
		return client.Event.Get(ctx, ref.ID)
	case KindPerson:
		return client.Person.Get(ctx, ref.ID)
	case KindMembership:
		return client.Membership.Get(ctx, ref.ID)
	case KindAward:
		return client.Award.Get(ctx, ref.ID)
	case KindTask:
		return client.Task.Get(ctx, ref.ID)
	default:
		return nil, fmt.Errorf("unknown relation kind %q", ref.Kind)
	}
}
