package toolkit

// Stock widget kinds. Backends may define more; the accessibility registry
// decides which kinds are exposed.
const (
	KindApplication Kind = "application"
	KindWindow      Kind = "window"
	KindBox         Kind = "box"
	KindOverlay     Kind = "overlay"
	KindLayer       Kind = "layer"
	KindButton      Kind = "button"
	KindCheck       Kind = "check"
	KindLabel       Kind = "label"
	KindEntry       Kind = "entry"
	KindSlider      Kind = "slider"
	KindSpin        Kind = "spin"
	KindImage       Kind = "image"
	KindMap         Kind = "map"
	KindRoute       Kind = "route"
	KindPreferences Kind = "preferences"
	KindSection     Kind = "section"
	KindPreference  Kind = "preference"
	KindSeparator   Kind = "separator"
)
