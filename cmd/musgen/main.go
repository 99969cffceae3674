package main

import (
	"os"
	"reflect"
	"strings"

	musgen "github.com/mus-format/musgen-go/mus"
	genops "github.com/mus-format/musgen-go/options/generate"
	introps "github.com/mus-format/musgen-go/options/interface"
	structops "github.com/mus-format/musgen-go/options/struct"
	typeops "github.com/mus-format/musgen-go/options/type"
	"github.com/poiesic/compendium/core"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	// If we're in the core subpackage, cd up to project root
	if strings.HasSuffix(cwd, "core") {
		if err := os.Chdir(".."); err != nil {
			panic(err)
		}
	}
	g, err := musgen.NewCodeGenerator(
		genops.WithPkgPath("github.com/poiesic/compendium/core"),
	)
	if err != nil {
		panic(err)
	}

	g.AddDefinedType(reflect.TypeFor[core.Kind]())
	g.AddDefinedType(reflect.TypeFor[core.Tradition]())
	g.AddDefinedType(reflect.TypeFor[core.Tier]())
	g.AddDefinedType(reflect.TypeFor[core.Checksum]())

	// Collection lengths are checked before the decoder allocates
	bounded := typeops.WithLenValidator("validateCollectionLen")

	err = g.AddStruct(reflect.TypeFor[core.Modifier]())
	if err != nil {
		panic(err)
	}

	err = g.AddStruct(reflect.TypeFor[core.Provenance]())
	if err != nil {
		panic(err)
	}

	err = g.AddStruct(reflect.TypeFor[core.CreatureDetails](),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(bounded),
		structops.WithField(bounded),
		structops.WithField(bounded),
		structops.WithField(bounded),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(bounded),
		structops.WithField(bounded),
		structops.WithField(bounded),
		structops.WithField())
	if err != nil {
		panic(err)
	}

	err = g.AddStruct(reflect.TypeFor[core.SpellDetails]())
	if err != nil {
		panic(err)
	}

	err = g.AddStruct(reflect.TypeFor[core.FeatDetails](),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(bounded),
		structops.WithField(),
		structops.WithField())
	if err != nil {
		panic(err)
	}

	err = g.AddStruct(reflect.TypeFor[core.ItemDetails]())
	if err != nil {
		panic(err)
	}

	// Details variants are written behind their DTM
	impls := []reflect.Type{
		reflect.TypeFor[core.CreatureDetails](),
		reflect.TypeFor[core.SpellDetails](),
		reflect.TypeFor[core.FeatDetails](),
		reflect.TypeFor[core.ItemDetails](),
	}
	iops := make([]introps.SetOption, 0, len(impls))
	for _, impl := range impls {
		if err = g.AddDTS(impl); err != nil {
			panic(err)
		}
		iops = append(iops, introps.WithImpl(impl))
	}
	err = g.AddInterface(reflect.TypeFor[core.Details](), iops...)
	if err != nil {
		panic(err)
	}

	// Details is nillable and stored separately, so it stays the last field
	err = g.AddStruct(reflect.TypeFor[core.ResolvedEntry](),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(bounded),
		structops.WithField(),
		structops.WithField(bounded),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(typeops.WithIgnore()))
	if err != nil {
		panic(err)
	}

	// Unix micro timestamps, decoded as UTC
	err = g.AddStruct(reflect.TypeFor[core.Metadata](),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(bounded),
		structops.WithField(),
		structops.WithField(typeops.WithTimeUnit(typeops.MicroUTC)))
	if err != nil {
		panic(err)
	}

	bs, err := g.Generate()
	if err != nil {
		panic(err)
	}

	err = os.WriteFile("./core/records_mus.gen.go", bs, 0644)
	if err != nil {
		panic(err)
	}
}
