package encode

type EncodeOption func(*Serializer)

// Pretty selects pretty printing with cfg.
func Pretty(cfg PrettyConfig) EncodeOption {
	return func(s *Serializer) { s.pretty = &prettyState{cfg: cfg} }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(s *Serializer) {
		if c != nil {
			s.Color = c.Color
		}
	}
}
