package modkit

// Built is a plain struct with the fields modules care about
type Built struct {
	Name  string
	Ports any
}

// Build applies Option funcs to an internal buildCfg and returns a plain struct
// later options win
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		if o != nil {
			o(&c)
		}
	}
	return Built{Name: c.name, Ports: c.ports}
}
