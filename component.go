package stash

import "reflect"

// maxComponentTypes matches the width of a mask.Mask, which is what caps
// how many component identities the registration mask can track.
const maxComponentTypes = 256

var identities = FactoryNewCache[componentIdentity](maxComponentTypes)

type componentIdentity struct {
	id  uint32
	typ reflect.Type
}

func (c componentIdentity) ID() uint32 { return c.id }

func (c componentIdentity) Type() reflect.Type { return c.typ }

// newIdentity returns the process-wide identity for typ, assigning a fresh
// sequential ID on first sight.
func newIdentity(typ reflect.Type) (componentIdentity, error) {
	key := typ.PkgPath() + "." + typ.String()
	if idx, found := identities.GetIndex(key); found {
		return *identities.GetItem(idx), nil
	}
	idx, err := identities.Register(key, componentIdentity{typ: typ})
	if err != nil {
		return componentIdentity{}, err
	}
	iden := identities.GetItem(idx)
	iden.id = uint32(idx)
	return *iden, nil
}
