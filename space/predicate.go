package space

// PointPredicate answers a membership question about a point.
// Implementations must be deterministic and free of side effects.
type PointPredicate interface {
	Test(p Point) bool
}

// PredicateFunc adapts an ordinary function to PointPredicate.
type PredicateFunc func(p Point) bool

// Test calls f(p).
func (f PredicateFunc) Test(p Point) bool { return f(p) }

// constPredicate is the constant true/false predicate.
type constPredicate bool

func (c constPredicate) Test(Point) bool { return bool(c) }

// True accepts every point; False accepts none.
var (
	True  PointPredicate = constPredicate(true)
	False PointPredicate = constPredicate(false)
)

// And returns the conjunction of preds, evaluated left to right with short-circuit.
// With no argument it returns True.
func And(preds ...PointPredicate) PointPredicate {
	switch len(preds) {
	case 0:
		return True
	case 1:
		return preds[0]
	}
	return PredicateFunc(func(p Point) bool {
		for _, pr := range preds {
			if !pr.Test(p) {
				return false
			}
		}
		return true
	})
}

// Or returns the disjunction of preds. With no argument it returns False.
func Or(preds ...PointPredicate) PointPredicate {
	if len(preds) == 0 {
		return False
	}
	return PredicateFunc(func(p Point) bool {
		for _, pr := range preds {
			if pr.Test(p) {
				return true
			}
		}
		return false
	})
}

// Not returns the negation of pred.
func Not(pred PointPredicate) PointPredicate {
	return PredicateFunc(func(p Point) bool { return !pred.Test(p) })
}
