package behaviour

// Behaviour is a top-level script driven by the engine loop, such as a game
// bootstrap that builds the scene in Start.
type Behaviour interface {
	Start()
	Update()
	UpdateFixed()
}

type behaviourWrapper struct {
	behaviour Behaviour
	started   bool
}

type BehaviourManager struct {
	behaviours []behaviourWrapper
	components *ComponentManager
}

var GlobalBehaviourManager = NewBehaviourManager(GlobalComponentManager)

func NewBehaviourManager(components *ComponentManager) *BehaviourManager {
	return &BehaviourManager{components: components}
}

func (m *BehaviourManager) Add(behaviour Behaviour) {
	m.behaviours = append(m.behaviours, behaviourWrapper{behaviour: behaviour})
}

func (m *BehaviourManager) Remove(behaviour Behaviour) {
	for i := range m.behaviours {
		if m.behaviours[i].behaviour == behaviour {
			// Remove by swapping with last element and truncating
			m.behaviours[i] = m.behaviours[len(m.behaviours)-1]
			m.behaviours = m.behaviours[:len(m.behaviours)-1]
			return
		}
	}
}

func (m *BehaviourManager) Len() int {
	return len(m.behaviours)
}

// Clear drops every behaviour and destroys the objects of the component
// manager. The engine calls it when the window closes.
func (m *BehaviourManager) Clear() {
	m.behaviours = m.behaviours[:0]
	if m.components != nil {
		m.components.Clear()
	}
}

func (m *BehaviourManager) ensureStarted(w *behaviourWrapper) {
	if !w.started {
		w.started = true
		w.behaviour.Start()
	}
}

// UpdateAll runs behaviours first, then the component system, so objects
// spawned in a behaviour's Start take part in the same frame.
func (m *BehaviourManager) UpdateAll() {
	for i := range m.behaviours {
		m.ensureStarted(&m.behaviours[i])
		m.behaviours[i].behaviour.Update()
	}

	if m.components != nil {
		m.components.UpdateAll()
	}
}

func (m *BehaviourManager) UpdateAllFixed() {
	for i := range m.behaviours {
		m.ensureStarted(&m.behaviours[i])
		m.behaviours[i].behaviour.UpdateFixed()
	}

	if m.components != nil {
		m.components.FixedUpdateAll()
	}
}
