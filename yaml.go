package numfmt

import "gopkg.in/yaml.v3"

// MarshalYAML implements [yaml.Marshaler].
func (n U8) MarshalYAML() (any, error) { return n.String(), nil }

// UnmarshalYAML implements [yaml.Unmarshaler]. It accepts the plain and
// comma-grouped digit forms.
func (n *U8) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return n.UnmarshalText([]byte(s))
}

// MarshalYAML implements [yaml.Marshaler].
func (n U16) MarshalYAML() (any, error) { return n.String(), nil }

// UnmarshalYAML implements [yaml.Unmarshaler]. It accepts the plain and
// comma-grouped digit forms.
func (n *U16) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return n.UnmarshalText([]byte(s))
}

// MarshalYAML implements [yaml.Marshaler].
func (n U32) MarshalYAML() (any, error) { return n.String(), nil }

// UnmarshalYAML implements [yaml.Unmarshaler]. It accepts the plain and
// comma-grouped digit forms.
func (n *U32) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return n.UnmarshalText([]byte(s))
}

// MarshalYAML implements [yaml.Marshaler].
func (n U64) MarshalYAML() (any, error) { return n.String(), nil }

// UnmarshalYAML implements [yaml.Unmarshaler]. It accepts the plain and
// comma-grouped digit forms.
func (n *U64) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return n.UnmarshalText([]byte(s))
}

// MarshalYAML implements [yaml.Marshaler].
func (f Float) MarshalYAML() (any, error) { return f.String(), nil }

// MarshalYAML implements [yaml.Marshaler].
func (p Percent) MarshalYAML() (any, error) { return p.String(), nil }

// MarshalYAML implements [yaml.Marshaler].
func (e Elapsed) MarshalYAML() (any, error) { return e.String(), nil }

// MarshalYAML implements [yaml.Marshaler].
func (c Clock) MarshalYAML() (any, error) { return c.String(), nil }
