package layout

// ID enumerates the shipped layouts in cycle order.
type ID int

// Layout identifiers.
const (
	QWERTY ID = iota
	Dvorak
	ThreeL

	idCount
)

// Next returns the successor in the cyclic layout order.
func (id ID) Next() ID {
	return (id + 1) % idCount
}

// Layout returns the table for the identifier.
func (id ID) Layout() *Layout {
	switch id {
	case Dvorak:
		return &layoutDvorak
	case ThreeL:
		return &layout3l
	default:
		return &layoutQWERTY
	}
}

// ParseID resolves a layout name from the CLI or config file.
func ParseID(name string) (ID, bool) {
	switch name {
	case "qwerty":
		return QWERTY, true
	case "dvorak":
		return Dvorak, true
	case "3l":
		return ThreeL, true
	}
	return QWERTY, false
}

// Names lists the accepted layout names in cycle order.
func Names() []string {
	return []string{"qwerty", "dvorak", "3l"}
}

var layoutQWERTY = Layout{
	Name: "QWERTY",
	Base: []Row{
		{'`', '1', '2', '3', '4', '5', '6', '7', '8', '9', '0', '[', ']', Empty},
		{Empty, 'q', 'w', 'e', 'r', 't', 'y', 'u', 'i', 'o', 'p', '[', ']', '\\'},
		{Empty, 'a', 's', 'd', 'f', 'g', 'h', 'j', 'k', 'l', ';', '\'', Empty, Empty},
		{Empty, 'z', 'x', 'c', 'v', 'b', 'n', 'm', ',', '.', '/', Empty, Empty, Empty},
	},
}

var layoutDvorak = Layout{
	Name: "Dvorak",
	Base: []Row{
		{'`', '1', '2', '3', '4', '5', '6', '7', '8', '9', '0', '[', ']', Empty},
		{Empty, '\'', ',', '.', 'p', 'y', 'f', 'g', 'c', 'r', '/', '=', '\\', Empty},
		{Empty, 'a', 'o', 'e', 'u', 'i', 'd', 'h', 't', 'n', 's', '-', Empty, Empty},
		{Empty, ';', 'q', 'j', 'k', 'x', 'b', 'm', 'w', 'v', 'z', Empty, Empty, Empty},
	},
}

var layout3l = Layout{
	Name: "3l",
	Base: []Row{
		{'q', 'f', 'u', 'y', 'z', 'x', 'k', 'c', 'w', 'b'},
		{'o', 'h', 'e', 'a', 'i', 'd', 'r', 't', 'n', 's'},
		{',', 'm', '.', 'j', ';', 'g', 'l', 'p', 'v', Empty},
	},
	Sym: []Row{
		{'"', '_', '[', ']', '^', '!', '<', '>', '=', '&'},
		{'/', '-', '{', '}', '*', '?', '(', ')', '\'', ':'},
		{'#', '$', '|', '~', '`', '+', '%', '\\', '@'},
	},
	Cur: []Row{
		{Empty, '1', '2', '3'},
		{Empty, '4', '5', '6'},
		{'0', '7', '8', '9'},
	},
	CurOffset: 6,
}
