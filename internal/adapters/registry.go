package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"galaxy-audit/internal/ports"
	"galaxy-audit/internal/shared"
	"galaxy-audit/internal/types"
)

const defaultRegistryBaseURL = "https://galaxy.ansible.com"
const defaultRegistryTimeout = 30 * time.Second

// GalaxyRegistryAdapter queries the Ansible Galaxy registry API.
type GalaxyRegistryAdapter struct {
	BaseURL string
	Client  *http.Client
}

func NewGalaxyRegistryAdapter(baseURL string, timeoutSec int) GalaxyRegistryAdapter {
	return GalaxyRegistryAdapter{
		BaseURL: normalizeRegistryBaseURL(baseURL),
		Client:  &http.Client{Timeout: normalizeRegistryTimeout(timeoutSec)},
	}
}

func normalizeRegistryBaseURL(baseURL string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return defaultRegistryBaseURL
	}
	return baseURL
}

func normalizeRegistryTimeout(timeoutSec int) time.Duration {
	if timeoutSec <= 0 {
		return defaultRegistryTimeout
	}
	return time.Duration(timeoutSec) * time.Second
}

func (a GalaxyRegistryAdapter) HostName() string {
	parsed, err := url.Parse(a.BaseURL)
	if err != nil || parsed.Host == "" {
		return strings.TrimPrefix(strings.TrimPrefix(a.BaseURL, "https://"), "http://")
	}
	return parsed.Host
}

func (a GalaxyRegistryAdapter) HumanURL(name string) (string, error) {
	// Example: https://galaxy.ansible.com/community/general
	raw := fmt.Sprintf("%s/%s", a.BaseURL, shared.CollectionPath(name))
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid registry url: %s", raw)).
			WithCause(err)
	}
	return parsed.String(), nil
}

// versionListing is the registry's published-versions payload.
type versionListing struct {
	Results []struct {
		Version string `json:"version"`
	} `json:"results"`
}

// releaseEntry is the registry's single-version payload.
type releaseEntry struct {
	Version     string `json:"version"`
	DownloadURL string `json:"download_url"`
}

func (a GalaxyRegistryAdapter) LatestVersion(ctx context.Context, name string) (string, error) {
	endpoint := fmt.Sprintf("%s/api/v2/collections/%s/versions/", a.BaseURL, shared.CollectionPath(name))
	body, err := a.get(ctx, endpoint)
	if err != nil {
		return "", err
	}
	var listing versionListing
	if err := json.Unmarshal(body, &listing); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse registry version listing").
			WithCause(err)
	}

	var versions []*semver.Version
	for _, entry := range listing.Results {
		version, err := semver.StrictNewVersion(entry.Version)
		if err != nil {
			log.Debug().Str("collection", name).Str("version", entry.Version).
				Msg("skipping unparsable registry version")
			continue
		}
		versions = append(versions, version)
	}
	if len(versions) == 0 {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no published versions for %s", name))
	}

	latest := versions[0]
	for _, version := range versions[1:] {
		if version.Compare(latest) > 0 {
			latest = version
		}
	}
	return latest.String(), nil
}

func (a GalaxyRegistryAdapter) Release(ctx context.Context, name string, version string) (types.RegistryRelease, error) {
	endpoint := fmt.Sprintf("%s/api/v2/collections/%s/versions/%s/",
		a.BaseURL, shared.CollectionPath(name), url.PathEscape(version))
	body, err := a.get(ctx, endpoint)
	if err != nil {
		return types.RegistryRelease{}, err
	}
	var entry releaseEntry
	if err := json.Unmarshal(body, &entry); err != nil {
		return types.RegistryRelease{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse registry release entry").
			WithCause(err)
	}
	if entry.DownloadURL == "" {
		return types.RegistryRelease{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("release entry for %s %s has no download url", name, version))
	}
	if entry.Version == "" {
		entry.Version = version
	}
	return types.RegistryRelease{Version: entry.Version, DownloadURL: entry.DownloadURL}, nil
}

func (a GalaxyRegistryAdapter) get(ctx context.Context, endpoint string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid registry request: %s", endpoint)).
			WithCause(err)
	}
	response, err := a.Client.Do(request)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("registry request failed").
			WithCause(err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read registry response").
			WithCause(err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		cause := shared.HTTPStatusError(response.StatusCode, endpoint)
		if trimmed := strings.TrimSpace(string(body)); trimmed != "" {
			cause = shared.HTTPStatusErrorWithBody(response.StatusCode, endpoint, trimmed)
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("registry returned an error").
			WithCause(cause)
	}
	return body, nil
}

var _ ports.RegistryPort = GalaxyRegistryAdapter{}
