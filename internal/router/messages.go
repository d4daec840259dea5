package router

// User-facing messages. The application speaks Spanish to its users; code
// and logs stay in English.
const (
	MsgWelcome          = "Hola, %s 👋"
	MsgPasswordTooShort = "La contraseña debe tener al menos 6 caracteres."
	MsgEmailTaken       = "Este correo electrónico ya está registrado."
	MsgBadCredentials   = "Correo o contraseña incorrectos."
	MsgBadDate          = "Formato de fecha no válido (usa AAAA-MM-DD)."
	MsgEndBeforeStart   = "La fecha de fin no puede ser anterior a la fecha de inicio."
	MsgRegistered       = "¡Registro exitoso! Ahora puedes iniciar sesión."
	MsgTripCreated      = "¡Viaje creado con éxito!"
)
