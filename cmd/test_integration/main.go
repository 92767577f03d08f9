package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/agenthands/graphite/internal/config"
	"github.com/agenthands/graphite/internal/core"
	"github.com/agenthands/graphite/internal/core/index"
	"github.com/agenthands/graphite/internal/core/model"
	"github.com/agenthands/graphite/internal/core/xsd"
)

// End-to-end smoke run over a small in-memory graph: build every index,
// then exercise support counting and assertion equivalence.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfg := config.Default()
	if path := os.Getenv("GRAPHITE_CONFIG"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		cfg = loaded
	}
	if shards := os.Getenv("GRAPHITE_BUILD_SHARDS"); shards != "" {
		n, err := strconv.Atoi(shards)
		if err != nil {
			log.Fatalf("Invalid GRAPHITE_BUILD_SHARDS: %v", err)
		}
		cfg.Concurrency.BuildShards = n
	}

	fmt.Println("Starting Integration Test...")

	g := sampleGraph()
	snap, err := core.BuildIndices(g, cfg)
	if err != nil {
		fmt.Println("FAILED: Build indices:", err)
		os.Exit(1)
	}
	fmt.Println("PASSED: Build indices")

	failed := false
	check := func(name string, got, want any) {
		if got == want {
			fmt.Println("PASSED:", name)
			return
		}
		fmt.Printf("FAILED: %s (got %v, want %v)\n", name, got, want)
		failed = true
	}

	// 1. Support: alice and dave have hasName edges, carol does not exist.
	person := model.NewObjectTypeVariable(exClass("Person"))
	hasName := ex("hasName")
	nameAssertion := model.NewAssertion(person, hasName, model.NewDataTypeVariable(xsd.String))
	domain := index.EntitySet{ex("alice"): {}, ex("dave"): {}, ex("carol"): {}}
	check("Support over hasName", snap.Support(nameAssertion, domain), 2)

	// 2. Equivalence: same variable subject, literals that normalize alike.
	a := model.NewAssertion(person, hasName, model.Literal{Value: "Alice", Datatype: xsd.String})
	b := model.NewAssertion(person, hasName, model.Literal{Value: " ALICE ", Datatype: xsd.String})
	check("Equivalence of normalized literals", snap.IsEquivalent(a, b), true)

	// 3. Variable vs concrete instance of its class.
	knows := ex("knows")
	c := model.NewAssertion(person, knows, model.NewObjectTypeVariable(exClass("Person")))
	d := model.NewAssertion(person, knows, ex("dave"))
	check("Variable matches typed entity", snap.IsEquivalent(c, d), true)

	// 4. Untyped entity only matches the generic class.
	e := model.NewAssertion(person, knows, ex("untyped"))
	check("Variable rejects untyped entity", snap.IsEquivalent(c, e), false)

	if failed {
		os.Exit(1)
	}
	fmt.Println("All checks passed.")
}

func ex(name string) model.IRI {
	return model.IRI("http://example.org/" + name)
}

func exClass(name string) model.IRI {
	return model.IRI("http://example.org/class/" + name)
}

func sampleGraph() *model.Graph {
	g := model.NewGraph()

	g.Add(ex("alice"), model.RDFType, exClass("Person"))
	g.Add(ex("alice"), model.RDFSLabel, model.Literal{Value: "Alice", Lang: "en"})
	g.Add(ex("alice"), ex("hasName"), model.Literal{Value: "Alice", Datatype: xsd.String})
	g.Add(ex("alice"), ex("knows"), ex("dave"))

	g.Add(ex("dave"), model.RDFType, exClass("Person"))
	g.Add(ex("dave"), model.RDFType, exClass("Student"))
	g.Add(ex("dave"), ex("hasName"), model.Literal{Value: "Dave", Datatype: xsd.String})
	g.Add(ex("dave"), ex("age"), model.Literal{Value: "23", Datatype: xsd.Integer})

	// No rdf:type assertion: lands in the generic class.
	g.Add(ex("untyped"), ex("knows"), ex("alice"))

	return g
}
