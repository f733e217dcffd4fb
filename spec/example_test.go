package spec_test

import (
	"fmt"
	"log"

	"github.com/oasgraph/oasgraph/graph"
	"github.com/oasgraph/oasgraph/spec"
)

// Example builds a small feed service document end to end: an OAuth2
// security scheme, defaulted error responses merged under a custom 200, and
// operations registered per path.
func Example() {
	oauthURL := "https://feeds.example.com/api/oauth"
	oauthScheme, err := graph.NewSecurityScheme(graph.SchemeOAuth2,
		graph.WithSchemeDescription("Default OAuth2"),
		graph.WithFlows(map[string]any{
			"implicit": map[string]any{
				"authorization_url": oauthURL + "/dialog",
			},
			"authorization_code": map[string]any{
				"authorization_url": oauthURL + "/dialog",
				"token_url":         oauthURL + "/token",
			},
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	ok, err := graph.NewResponse(200)
	if err != nil {
		log.Fatal(err)
	}
	if err := ok.SetContent("UserFeedGetResponse", map[string]any{
		"media_feed": "reddit",
		"username":   "test_user",
	}); err != nil {
		log.Fatal(err)
	}

	get := graph.NewOperation("Retrieve details for a single feed of a user",
		graph.WithOperationTags("Feed"),
	)
	if err := get.AddParameter("UserFeedDetailParam", "media_feed"); err != nil {
		log.Fatal(err)
	}
	if err := get.UpsertResponses([]*graph.Response{ok}); err != nil {
		log.Fatal(err)
	}
	if err := get.UpsertResponses(graph.DefaultResponses([]int{400, 401, 403, 404, 429})); err != nil {
		log.Fatal(err)
	}

	doc := spec.New("Feed Service", "0.1.0",
		spec.WithServer("https://feeds.example.com", "Production"),
		spec.WithSecurityRequirement("default_oauth"),
	)
	if err := doc.Components().AddSecurityScheme("default_oauth", oauthScheme); err != nil {
		log.Fatal(err)
	}
	if err := doc.AddPath("/feed/{media_feed}", map[string]*graph.Operation{"get": get}); err != nil {
		log.Fatal(err)
	}

	data, err := doc.MarshalYAML()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(data) > 0)
	// Output: true
}
