// Command ee evaluates expressions from its arguments, or from stdin if
// none are given, one per line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/exprlang/ee"
)

func main() {
	log.SetFlags(0)
	var (
		inname string
		echo   bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.BoolVar(&echo, "echo", false, "print tokenized input alongside its result")
	flag.Parse()

	tok := ee.NewTokenizer()

	args := flag.Args()
	if len(args) > 0 {
		for _, arg := range args {
			run(tok, arg, echo)
		}
		return
	}

	var in io.Reader = os.Stdin
	if inname != "" && inname != "-" {
		f, err := os.Open(inname)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		run(tok, line, echo)
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}

func run(tok *ee.Tokenizer, src string, echo bool) {
	tokens, err := tok.Tokenize(src)
	if err != nil {
		fmt.Println(err)
		return
	}
	rpn, err := ee.Parse(tokens)
	if err != nil {
		fmt.Println(err)
		return
	}
	result, err := ee.Evaluate(rpn)
	if err != nil {
		fmt.Println(err)
		return
	}
	if echo {
		fmt.Printf("%s => %v\n", ee.Format(tokens), result)
		return
	}
	fmt.Println(result)
}
