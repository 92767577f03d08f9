package model

import "github.com/google/uuid"

// Node is a term in the graph: a concrete resource (IRI or Literal) or a
// typed pattern variable. The set of kinds is closed and consumers dispatch
// on it with type switches, so matching rules stay exhaustive.
type Node interface {
	isNode()
}

// IRI identifies an entity. Two entities are the same iff their IRIs are equal.
type IRI string

func (IRI) isNode() {}

func (i IRI) String() string { return string(i) }

// Literal is a value term with an optional datatype and language tag.
// It is comparable and can be used as a map key.
type Literal struct {
	Value    string
	Datatype IRI
	Lang     string
}

func (Literal) isNode() {}

func (l Literal) String() string { return l.Value }

// TypeVariable is the common interface of the three variable kinds.
// A variable stands for "any resource of VarType()" during pattern search.
type TypeVariable interface {
	Node
	VarType() IRI
}

// ObjectTypeVariable matches any entity of class Type.
type ObjectTypeVariable struct {
	UUID uuid.UUID
	Type IRI
}

func (ObjectTypeVariable) isNode() {}

func (v ObjectTypeVariable) VarType() IRI { return v.Type }

// DataTypeVariable matches any literal of datatype Type.
type DataTypeVariable struct {
	UUID uuid.UUID
	Type IRI
}

func (DataTypeVariable) isNode() {}

func (v DataTypeVariable) VarType() IRI { return v.Type }

// MultiModalNode tags literals of a multimodal datatype family. For
// equivalence purposes it behaves exactly like a DataTypeVariable.
type MultiModalNode struct {
	UUID uuid.UUID
	Type IRI
}

func (MultiModalNode) isNode() {}

func (v MultiModalNode) VarType() IRI { return v.Type }

// Each variable instance gets its own identity: two fresh ?x:Person variables
// are type-equal but never the same node.

func NewObjectTypeVariable(t IRI) ObjectTypeVariable {
	return ObjectTypeVariable{UUID: uuid.New(), Type: t}
}

func NewDataTypeVariable(t IRI) DataTypeVariable {
	return DataTypeVariable{UUID: uuid.New(), Type: t}
}

func NewMultiModalNode(t IRI) MultiModalNode {
	return MultiModalNode{UUID: uuid.New(), Type: t}
}
