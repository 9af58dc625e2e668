package main

import (
	"fmt"
	"log"

	"github.com/skyline93/hashmap"
)

func main() {
	tbl, err := hashmap.New()
	if err != nil {
		log.Fatalf("create table: %v", err)
	}
	defer tbl.Close()

	// The table borrows the key bytes; keep them alive while stored.
	hosts := map[string]string{
		"web-1": "10.0.0.1",
		"web-2": "10.0.0.2",
		"db-1":  "10.0.1.1",
	}
	for name, addr := range hosts {
		if err := tbl.Insert(hashmap.NewEntry([]byte(name), addr)); err != nil {
			log.Fatalf("insert %s: %v", name, err)
		}
	}
	fmt.Printf("inserted %d entries, capacity %d\n", tbl.Len(), tbl.Cap())

	if v, ok := tbl.Find(hashmap.NewKey([]byte("web-2"))); ok {
		fmt.Println("web-2 ->", v)
	}

	// Insert never overwrites; replace by erasing first.
	err = tbl.Insert(hashmap.NewEntry([]byte("web-2"), "10.0.0.99"))
	fmt.Println("duplicate insert:", err)

	if err := tbl.Erase(hashmap.NewKey([]byte("web-2"))); err != nil {
		log.Fatalf("erase: %v", err)
	}
	if err := tbl.Insert(hashmap.NewEntry([]byte("web-2"), "10.0.0.99")); err != nil {
		log.Fatalf("re-insert: %v", err)
	}
	if v, ok := tbl.Find(hashmap.NewKey([]byte("web-2"))); ok {
		fmt.Println("web-2 ->", v)
	}

	fmt.Printf("%d entries, capacity %d\n", tbl.Len(), tbl.Cap())
}
