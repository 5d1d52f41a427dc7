package config

// Default returns the built-in configuration: a vcr channel tuned for VCR
// cassette inspection and a plain yaml channel for arbitrary YAML files.
func Default() *Config {
	vcr := &Channel{
		Name:         "vcr",
		GlobPatterns: []string{"**/*.yaml", "**/*.yml"},
		Rules: []Rule{
			{
				Pattern:      "http_interactions[].response.body.string",
				Formatter:    "auto",
				Label:        "Response Body",
				MetadataKeys: []string{"request.method", "request.uri", "response.status.code"},
			},
			{
				Pattern:      "http_interactions[].request.body",
				Formatter:    "text",
				Label:        "Request Body",
				MetadataKeys: []string{"request.method", "request.uri"},
			},
			{
				Pattern:      "http_interactions[]",
				Formatter:    "yaml",
				Label:        "Interaction",
				MetadataKeys: []string{"request.method", "request.uri", "response.status.code"},
			},
		},
	}

	yamlChannel := &Channel{
		Name:         "yaml",
		GlobPatterns: []string{"**/*.yaml", "**/*.yml"},
		Rules: []Rule{
			{
				Pattern:   ".",
				Formatter: "yaml",
				Label:     "Full Document",
			},
		},
	}

	return &Config{
		DefaultChannel: "vcr",
		Channels: map[string]*Channel{
			"vcr":  vcr,
			"yaml": yamlChannel,
		},
	}
}
