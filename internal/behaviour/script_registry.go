package behaviour

import "sort"

type ScriptConstructor func() Component

var scriptRegistry = make(map[string]ScriptConstructor)

// RegisterScript makes a script constructor available by name. Registering a
// name twice replaces the earlier constructor.
func RegisterScript(name string, constructor ScriptConstructor) {
	scriptRegistry[name] = constructor
}

// GetAvailableScripts lists registered script names in sorted order.
func GetAvailableScripts() []string {
	names := make([]string, 0, len(scriptRegistry))
	for name := range scriptRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func CreateScript(name string) Component {
	if constructor, exists := scriptRegistry[name]; exists {
		return constructor()
	}
	return nil
}
