package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sat-lab/satlab/pkg/sat"
)

func main() {
	// Define arguments
	filePtr := flag.String("file", "", "Path to a DIMACS CNF file to load")
	generatePtr := flag.String("generate", "", "Path to a JSON generator config with \"variables\", \"clauses\", \"clauseSize\" and an optional \"seed\"")
	outPtr := flag.String("out", "", "Path to write the instance to in DIMACS CNF; if empty, nothing is written")
	negatePtr := flag.Int("negate", -1, "Variable index whose assignment bit is flipped before reporting")
	resamplePtr := flag.Bool("resample", false, "Resample the assignment at random before reporting")
	flag.Parse()

	// Validate arguments
	if *filePtr == "" && *generatePtr == "" {
		log.Fatal("either -file or -generate must be specified")
	} else if *filePtr != "" && *generatePtr != "" {
		log.Fatal("-file and -generate are mutually exclusive")
	}

	// Load or generate the instance
	var instance *sat.Instance
	if *filePtr != "" {
		var err error
		instance, err = sat.Load(*filePtr)
		if err != nil {
			log.Fatalf("cannot load instance: %v", err)
		}
	} else {
		config, err := sat.GeneratorConfigFromJson(*generatePtr)
		if err != nil {
			log.Fatalf("cannot parse generator config: %v", err)
		}
		instance = config.Build()
	}

	// Adjust the assignment
	if *negatePtr >= 0 {
		if err := instance.Vars.Negate(*negatePtr); err != nil {
			log.Fatalf("cannot negate variable %v: %v", *negatePtr, err)
		}
	}
	if *resamplePtr {
		instance.ResampleAssignmentDefault()
	}

	if *outPtr != "" {
		if err := instance.Save(*outPtr); err != nil {
			log.Fatalf("cannot save instance: %v", err)
		}
	}

	// Report diagnostics
	fmt.Printf("Variables: %v\n", instance.VariableCount())
	fmt.Printf("Clauses: %v\n", instance.ClauseCount())
	fmt.Printf("Satisfied clauses: %v\n", instance.CountSatisfied())
	if ratio, err := instance.ClauseToVariableRatio(); err == nil {
		fmt.Printf("Clause-to-variable ratio: %.3f\n", ratio)
	}

	// Exit-code of 10 stands for satisfied and exit-code 20 stands for unsatisfied
	if instance.IsSatisfied() {
		fmt.Println("The current assignment satisfies the instance")
		os.Exit(10)
	}
	fmt.Println("The current assignment does not satisfy the instance")
	os.Exit(20)
}
