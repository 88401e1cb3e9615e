package stateful_test

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/tychoish/stateful"
)

func ExampleOnChange() {
	isThree := stateful.MakePredicate(func(x int) bool { return x == 3 })
	fmt.Println(stateful.Mask(context.Background(), []int{2, 3, 3, 3, 4, 3, 5, -8}, stateful.OnChange(isThree)))
	// Output: [false true false false true true true false]
}

func ExampleSwitchTrueFalse() {
	isZero := stateful.MakePredicate(func(x int) bool { return x == 0 })
	isMinusOne := stateful.MakePredicate(func(x int) bool { return x == -1 })
	fmt.Println(stateful.Filter(context.Background(), []int{2, 1, 0, 4, 9, -1, 7, 0, 3}, stateful.SwitchTrueFalse(isZero, isMinusOne)))
	// Output: [0 4 9 0 3]
}

func ExampleNthElementAfter() {
	isThree := stateful.MakePredicate(func(x int) bool { return x == 3 })
	fmt.Println(stateful.Filter(context.Background(), []int{2, 3, 0, 7, 4, 3, 5, -8}, stateful.NthElementAfter(2, isThree)))
	// Output: [7 -8]
}

func ExampleTrueOneAfter() {
	ctx := context.Background()
	isEven := stateful.MakePredicate(func(x int) bool { return x%2 == 0 })
	fmt.Println(stateful.Mask(ctx, []int{3, 2, 5, 7, 4, 1}, isEven))
	fmt.Println(stateful.Mask(ctx, []int{3, 2, 5, 7, 4, 1}, stateful.TrueOneAfter(isEven)))
	// Output:
	// [false true false false true false]
	// [false false true false false true]
}

func ExampleTrueSince() {
	ctx := context.Background()
	lines := strings.Split("Begin of a file \nNot so important stuff.\n\n [footer]  \nthis is a footer section\n\nsome text...", "\n")

	footer := regexp.MustCompile(`(?i)\[footer]`)
	isFooter := stateful.MakePredicate(footer.MatchString)

	fmt.Printf("%q\n", stateful.Filter(ctx, lines, stateful.TrueSince(isFooter)))
	fmt.Printf("%q\n", stateful.Filter(ctx, lines, stateful.TrueSince(stateful.TrueOneAfter(isFooter))))
	// Output:
	// [" [footer]  " "this is a footer section" "" "some text..."]
	// ["this is a footer section" "" "some text..."]
}

func ExampleResume() {
	ctx := context.Background()
	isThree := stateful.MakePredicate(func(x int) bool { return x == 3 })
	machine, err := stateful.NewOffsetMachine(2, isThree)
	if err != nil {
		panic(err)
	}

	first := stateful.NewDetector[int, stateful.OffsetState](machine)
	fmt.Println(stateful.Mask(ctx, []int{2, 3, 0}, first.Predicate()), first.State())

	second, err := stateful.Resume[int, stateful.OffsetState](machine, first.State())
	if err != nil {
		panic(err)
	}
	var out []bool
	for idx, v := range []int{7, 4, 3, 5, -8} {
		out = append(out, second.Test(ctx, v, idx+3))
	}
	fmt.Println(out)
	// Output:
	// [false false false] counting(1)
	// [true false false false true]
}
