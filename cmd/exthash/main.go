// Exthash is an interactive driver for the extendible hash table.
//
// Usage:
//
//	go run ./cmd/exthash -capacity 2 -depth 0
//
// Commands, one per line:
//
//	0    exit
//	1 x  insert the integer x
//	2 x  remove the integer x
//	3    dump the table
//
// Any other leading token is reported as invalid and ignored.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/tamirms/exthash"
)

const usage = `Input format:
0  : Exit the program
1 x: Insert an element x (x is an integer)
2 x: Remove an element x (x is an integer)
3  : Print the hash table`

func main() {
	log.SetFlags(0)
	capacityFlag := flag.Int("capacity", 2, "fixed capacity of every bucket")
	depthFlag := flag.Int("depth", 0, "initial global depth")
	flag.Parse()

	dir, err := exthash.New(
		exthash.WithBucketCapacity(*capacityFlag),
		exthash.WithGlobalDepth(*depthFlag),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(usage)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "0":
			return
		case "1", "2":
			if len(fields) < 2 {
				fmt.Println("missing operand")
				continue
			}
			key, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil {
				fmt.Printf("invalid integer %q\n", fields[1])
				continue
			}
			if fields[0] == "1" {
				slot, err := dir.Insert(key)
				if err != nil {
					fmt.Println(err)
					continue
				}
				fmt.Printf("inserted %d into slot %d\n", key, slot)
			} else {
				dir.Remove(key)
			}
		case "3":
			printDump(dir)
		default:
			fmt.Println("Invalid Input")
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}

func printDump(dir *exthash.Directory) {
	fmt.Println()
	for _, s := range dir.Dump() {
		fmt.Printf("Slot %d / %d (local depth %d)\n", s.Slot+1, s.NumSlots, s.LocalDepth)
		fmt.Print("Data:\t")
		for _, k := range s.Keys {
			fmt.Printf("%d ", k)
		}
		fmt.Print("\n\n")
	}
}
