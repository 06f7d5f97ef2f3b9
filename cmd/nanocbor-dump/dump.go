package main

import (
	"encoding/hex"
	"fmt"

	"github.com/nanocbor-go/nanocbor/cbor"
)

const maxDumpDepth = 20

type dumper struct {
	pretty     bool
	strictUTF8 bool
}

func (p *dumper) indent(depth int) {
	if !p.pretty {
		return
	}
	for i := 0; i < depth; i++ {
		fmt.Print("  ")
	}
}

func (p *dumper) sep() {
	if p.pretty {
		fmt.Print("\n")
	}
}

// items prints every item remaining in c, separated by commas.
func (p *dumper) items(c *cbor.Cursor, depth int) error {
	first := true
	for !c.AtEnd() {
		if !first {
			fmt.Print(", ")
		}
		first = false
		p.indent(depth)
		if err := p.item(c, depth); err != nil {
			return err
		}
		p.sep()
	}
	return nil
}

// pairs prints every key/value pair remaining in a map cursor.
func (p *dumper) pairs(c *cbor.Cursor, depth int) error {
	first := true
	for !c.AtEnd() {
		if !first {
			fmt.Print(", ")
		}
		first = false
		p.indent(depth)
		if err := p.item(c, depth); err != nil {
			return err
		}
		fmt.Print(": ")
		if err := p.item(c, depth); err != nil {
			return err
		}
		p.sep()
	}
	return nil
}

func (p *dumper) item(c *cbor.Cursor, depth int) error {
	if depth > maxDumpDepth {
		return cbor.ErrRecursion
	}
	major, err := c.Type()
	if err != nil {
		return err
	}

	switch major {
	case cbor.MajorUint:
		v, err := c.GetUint64()
		if err != nil {
			return err
		}
		fmt.Print(v)

	case cbor.MajorNint:
		v, err := c.GetInt64()
		if err != nil {
			return err
		}
		fmt.Print(v)

	case cbor.MajorBytes:
		b, err := c.GetBytes()
		if err != nil {
			return err
		}
		fmt.Print("h'" + hex.EncodeToString(b) + "'")

	case cbor.MajorText:
		s, err := c.GetText()
		if err != nil {
			return err
		}
		if p.strictUTF8 && !cbor.ValidUTF8([]byte(s)) {
			return fmt.Errorf("malformed UTF-8 text string %q", s)
		}
		fmt.Printf("%q", s)

	case cbor.MajorArray:
		fmt.Print("[")
		p.sep()
		child, err := c.EnterArray()
		if err != nil {
			return err
		}
		if err := p.items(child, depth+1); err != nil {
			return err
		}
		p.indent(depth)
		fmt.Print("]")
		if err := c.LeaveContainer(child); err != nil {
			return err
		}

	case cbor.MajorMap:
		fmt.Print("{")
		p.sep()
		child, err := c.EnterMap()
		if err != nil {
			return err
		}
		if err := p.pairs(child, depth+1); err != nil {
			return err
		}
		p.indent(depth)
		fmt.Print("}")
		if err := c.LeaveContainer(child); err != nil {
			return err
		}

	case cbor.MajorTag:
		tag, err := c.GetTag()
		if err != nil {
			return err
		}
		fmt.Printf("%d(", tag)
		if err := p.item(c, depth); err != nil {
			return err
		}
		fmt.Print(")")

	case cbor.MajorFloat:
		return p.simple(c)
	}
	return nil
}

func (p *dumper) simple(c *cbor.Cursor) error {
	if b, err := peekBool(c); err == nil {
		fmt.Print(b)
		return nil
	}
	if err := peekNull(c); err == nil {
		fmt.Print("null")
		return nil
	}
	if f, err := c.GetFloat64(); err == nil {
		fmt.Print(f)
		return nil
	}
	v, err := c.GetSimple()
	if err != nil {
		return err
	}
	fmt.Printf("simple(%d)", v)
	return nil
}

// peekBool and peekNull exist only so the dumper can try each simple-value
// shape in turn without consuming the cursor on a failed guess: they work
// against a throwaway copy and only commit by re-running the winning read
// against c itself.
func peekBool(c *cbor.Cursor) (bool, error) {
	probe := *c
	v, err := probe.GetBool()
	if err != nil {
		return false, err
	}
	_, err = c.GetBool()
	return v, err
}

func peekNull(c *cbor.Cursor) error {
	probe := *c
	if err := probe.GetNull(); err != nil {
		return err
	}
	return c.GetNull()
}
