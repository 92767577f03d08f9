package model

// Core vocabulary namespaces.
const (
	RDFNamespace  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"
)

const (
	// RDFType links an entity to a class it belongs to.
	RDFType IRI = RDFNamespace + "type"

	// RDFSLabel links an entity to its display label.
	RDFSLabel IRI = RDFSNamespace + "label"

	// RDFSClass is the generic class assigned to entities with no asserted type.
	RDFSClass IRI = RDFSNamespace + "Class"
)
