package main

func init() {
	ensureTranslationCoverage()
}

var translations = map[string]map[string]string{
	"es": {
		"bad_arguments":     "Argumentos inválidos. Uso: %s",
		"storage_error":     "⚠️ Error al acceder a la base de datos. Inténtalo de nuevo.",
		"invalid_tier":      "Tipo de VIP inválido: %s. Debe ser %s.",
		"tier_conj":         "o",
		"member_exists":     "El usuario con ID %d ya existe.",
		"member_inserted":   "Nuevo usuario VIP insertado: ID %d con VIP %s",
		"member_not_found":  "No se encontró usuario VIP con ID %d.",
		"member_updated":    "Tipo de VIP actualizado para ID %d a %s",
		"member_deleted":    "Usuario VIP con ID %d borrado",
		"list_title":        "Lista de usuarios VIP:",
		"list_line":         "ID: %d, Tipo de VIP: %s, Descuento mecánico: %t, Descuento estético: %t, Ingreso: %s, Modificado: %s",
		"list_empty":        "No hay usuarios VIP en la base de datos.",
		"flags_status":      "ID %d - descuento mecánico: %t, descuento estético: %t",
		"flag_cleared":      "Descuento %s utilizado para ID %d.",
		"flag_mechanical":   "mecánico",
		"flag_aesthetic":    "estético",
		"usage_ingresar":    "ingresar <id> <tipo>",
		"usage_editar":      "editar <id> <tipo>",
		"usage_borrar":      "borrar <id>",
		"desc_ingresar":     "Registra un nuevo usuario VIP",
		"desc_editar":       "Cambia el tipo de VIP de un usuario",
		"desc_borrar":       "Borra un usuario VIP",
		"desc_lista":        "Lista todos los usuarios VIP",
		"desc_estado":       "Estado del bot",
		"desc_ayuda":        "Muestra esta ayuda",
		"help_title":        "Comandos disponibles:",
		"help_bare_id":      "%s<id> consulta los descuentos; %s<id> mecanico|estetico consume uno.",
		"status_title":      "*Estado de vipbot*",
		"status_uptime":     "Activo desde hace: %s",
		"status_members":    "Usuarios VIP: %d",
		"status_process":    "Memoria del proceso: %s",
		"status_host_mem":   "Memoria del host: %.1f%% de %s",
		"status_host_up":    "Host encendido: %s",
		"status_next_reset": "Reinicio de descuentos: %s a las %02d:00",
		"unavailable":       "n/d",
		"weekday_sunday":    "domingo",
		"weekday_monday":    "lunes",
		"weekday_tuesday":   "martes",
		"weekday_wednesday": "miércoles",
		"weekday_thursday":  "jueves",
		"weekday_friday":    "viernes",
		"weekday_saturday":  "sábado",
	},
	"en": {
		"bad_arguments":     "Invalid arguments. Usage: %s",
		"storage_error":     "⚠️ Database error. Please try again.",
		"invalid_tier":      "Invalid VIP tier: %s. Must be %s.",
		"tier_conj":         "or",
		"member_exists":     "User with ID %d already exists.",
		"member_inserted":   "New VIP user inserted: ID %d with VIP %s",
		"member_not_found":  "No VIP user found with ID %d.",
		"member_updated":    "VIP tier updated for ID %d to %s",
		"member_deleted":    "VIP user with ID %d deleted",
		"list_title":        "VIP users:",
		"list_line":         "ID: %d, VIP tier: %s, Mechanical discount: %t, Aesthetic discount: %t, Joined: %s, Modified: %s",
		"list_empty":        "There are no VIP users in the database.",
		"flags_status":      "ID %d - mechanicalDiscount: %t, aestheticDiscount: %t",
		"flag_cleared":      "%s discount used for ID %d.",
		"flag_mechanical":   "Mechanical",
		"flag_aesthetic":    "Aesthetic",
		"usage_ingresar":    "ingresar <id> <tier>",
		"usage_editar":      "editar <id> <tier>",
		"usage_borrar":      "borrar <id>",
		"desc_ingresar":     "Register a new VIP user",
		"desc_editar":       "Change a user's VIP tier",
		"desc_borrar":       "Delete a VIP user",
		"desc_lista":        "List all VIP users",
		"desc_estado":       "Bot status",
		"desc_ayuda":        "Show this help",
		"help_title":        "Available commands:",
		"help_bare_id":      "%s<id> shows the discounts; %s<id> mecanico|estetico uses one.",
		"status_title":      "*vipbot status*",
		"status_uptime":     "Up for: %s",
		"status_members":    "VIP users: %d",
		"status_process":    "Process memory: %s",
		"status_host_mem":   "Host memory: %.1f%% of %s",
		"status_host_up":    "Host uptime: %s",
		"status_next_reset": "Discount reset: %s at %02d:00",
		"unavailable":       "n/a",
		"weekday_sunday":    "Sunday",
		"weekday_monday":    "Monday",
		"weekday_tuesday":   "Tuesday",
		"weekday_wednesday": "Wednesday",
		"weekday_thursday":  "Thursday",
		"weekday_friday":    "Friday",
		"weekday_saturday":  "Saturday",
	},
}

func ensureTranslationCoverage() {
	es, ok := translations["es"]
	if !ok {
		return
	}
	for lang, langMap := range translations {
		if lang == "es" {
			continue
		}
		for key, value := range es {
			if _, exists := langMap[key]; !exists {
				langMap[key] = value
			}
		}
	}
}

// tr returns the translated string for key, falling back to Spanish and then to the key itself.
func tr(lang, key string) string {
	t, ok := translations[lang]
	if !ok {
		t = translations["es"]
	}
	if v, ok := t[key]; ok {
		return v
	}
	if v, ok := translations["es"][key]; ok {
		return v
	}
	return key
}
