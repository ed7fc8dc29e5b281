package entity

// LifecycleState estado lógico de una entidad. Los registros nunca se borran físicamente:
// se desactivan (directorio) o cambian de estado (paradas de línea).
type LifecycleState interface {
	String() string
	Valid() bool
	Terminal() bool
}

// ActivityState estado de las entidades del directorio (Location, Division, Line).
type ActivityState string

const (
	StateActive   ActivityState = "active"
	StateInactive ActivityState = "inactive"
)

var _ LifecycleState = StateActive

func (s ActivityState) String() string { return string(s) }

func (s ActivityState) Valid() bool { return s == StateActive || s == StateInactive }

// Terminal: la desactivación es reversible.
func (s ActivityState) Terminal() bool { return false }

// IsActive proyección booleana que se persiste en la columna is_active.
func (s ActivityState) IsActive() bool { return s == StateActive }

// ActivityFromBool convierte la columna is_active al estado.
func ActivityFromBool(active bool) ActivityState {
	if active {
		return StateActive
	}
	return StateInactive
}

// CanTransitionTo Active <-> Inactive; transición a sí mismo no permitida.
func (s ActivityState) CanTransitionTo(next ActivityState) bool {
	return s.Valid() && next.Valid() && s != next
}
