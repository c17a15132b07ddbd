package main

import "time"

// Config is the container for app configuration.
type Config struct {
	// GithubAPIAddress - address for rest github api with protocol
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubToken - personal access token for the rest github api,
	// generated at https://github.com/settings/tokens
	GithubToken string `envconfig:"GITHUB_TOKEN"`

	// GithubAPIRateLimit - max frequency for github rest api calls per second
	GithubAPIRateLimit float64 `default:"5"`

	// GithubHTTPTimeout - timeout for a single github api call
	GithubHTTPTimeout time.Duration `default:"30s"`

	// GithubClientCacheSize - maximum number of elements in cache for each github client method
	GithubClientCacheSize int `default:"10000"`

	// GithubClientCacheTTL - maximum lifetime for github client cache entries
	GithubClientCacheTTL time.Duration `default:"10m"`

	// GithubDBPath - filepath for bolt db data
	GithubDBPath string `default:"./ghscout.data"`

	// GithubDBBucketName - bolt db bucket name
	GithubDBBucketName string `default:"github"`

	// GithubDBDataTTL - maximum lifetime for cached data in db
	GithubDBDataTTL time.Duration `default:"1h"`

	// GUIServerAddress - listen address for the web frontend
	GUIServerAddress string `default:"127.0.0.1:8080"`

	// GUIRequestTimeout - timeout for a single web frontend search
	GUIRequestTimeout time.Duration `default:"10m"`
}
