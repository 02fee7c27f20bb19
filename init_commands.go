package main

func SetupCommandRegistry() *CommandRegistry {
	r := NewCommandRegistry()

	// Registry
	r.Register("ingresar", &RegisterCmd{})
	r.Register("editar", &EditTierCmd{})
	r.Register("borrar", &DeleteCmd{})
	r.Register("lista", &ListCmd{})

	// Tools
	r.Register("estado", &StatusCmd{})
	r.Register("ayuda", &HelpCmd{})

	return r
}
