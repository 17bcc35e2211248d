package sift_test

import (
	"fmt"
	"time"

	"github.com/go-sift/sift"
)

type Account struct {
	Name    string
	Email   *string
	Plan    string `default:"free"`
	Retries int    `sift:"retries,omitempty"`
}

func ExampleExtract() {
	node := sift.MustParse(`{"name": "Joe", "email": "joe@example.com"}`)

	account, err := sift.Extract[Account](node, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(account.Name)
	fmt.Println(*account.Email)
	fmt.Println(account.Plan)
	// Output:
	// Joe
	// joe@example.com
	// free
}

func ExampleExtractOr() {
	node := sift.MustParse(`"not a number"`)

	port := sift.ExtractOr(node, nil, func() int { return 8080 })
	fmt.Println(port)
	// Output:
	// 8080
}

func ExampleExtractListWith() {
	node := sift.MustParse(`[{"name":"john","age":32},{"name":"joe","age":23}]`)

	names, err := sift.ExtractListWith(node, func(n sift.Node) (string, error) {
		return sift.Extract[string](n.Get("name"), nil)
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(names)
	// Output:
	// [john joe]
}

func ExampleRegisterConverter() {
	reg := sift.NewRegistry(sift.RegistryOpts{})
	sift.RegisterConverter(reg, func(n sift.Node) (time.Duration, error) {
		return time.ParseDuration(n.Str())
	})

	timeout, err := sift.Extract[time.Duration](sift.MustParse(`"90s"`), reg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(timeout)
	// Output:
	// 1m30s
}

func ExampleParseLenient() {
	node, err := sift.ParseLenient(`{'name': 'Joe', 'age': 30,}`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(node.Get("name").Str())
	// Output:
	// Joe
}
