package main

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/go-resty/resty/v2"
)

type recipe struct {
	Length        int      `json:"length,omitempty"`
	CharacterSets []string `json:"characterSets,omitempty"`
}

type field struct {
	Purpose  string  `json:"purpose,omitempty"`
	Value    string  `json:"value,omitempty"`
	Generate bool    `json:"generate,omitempty"`
	Recipe   *recipe `json:"recipe,omitempty"`
}

type item struct {
	Title  string  `json:"title"`
	Fields []field `json:"fields,omitempty"`
}

func main() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		fmt.Printf("WIRE BODY: %s\n", b)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := resty.New().SetBaseURL(srv.URL)
	body := item{Title: "x", Fields: []field{
		{Purpose: "USERNAME", Value: "jordan"},
		{Purpose: "PASSWORD", Generate: true, Recipe: &recipe{Length: 32, CharacterSets: []string{"LETTERS"}}},
	}}
	resp, err := c.R().
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&item{}).
		Post("/v1/x")
	fmt.Println("status:", resp.StatusCode(), "err:", err)
}
