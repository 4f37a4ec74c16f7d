package list_test

import (
	"container/list"
	"fmt"

	ilist "github.com/jake-scott/go-iterator/iter/list"
)

func ExampleRange() {
	l := list.New()
	for _, animal := range []string{"dog", "cat", "fox", "pigeon"} {
		l.PushBack(animal)
	}

	for i, animal := range ilist.Range[string](l).Indexed() {
		fmt.Printf("%d: <%s>\n", i, animal)
	}

	// output:
	// 0: <dog>
	// 1: <cat>
	// 2: <fox>
	// 3: <pigeon>
}
