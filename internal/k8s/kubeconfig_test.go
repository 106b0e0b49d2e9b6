package k8s

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"
)

// writeKubeconfig writes a kubeconfig with one cluster per context and
// returns its path
func writeKubeconfig(t *testing.T, current string, contexts ...string) string {
	t.Helper()

	config := clientcmdapi.NewConfig()
	config.AuthInfos["user"] = &clientcmdapi.AuthInfo{Token: "token"}
	for _, name := range contexts {
		config.Clusters[name+"-cluster"] = &clientcmdapi.Cluster{
			Server: "https://" + name + ".example.com",
		}
		config.Contexts[name] = &clientcmdapi.Context{
			Cluster:  name + "-cluster",
			AuthInfo: "user",
		}
	}
	config.CurrentContext = current

	path := filepath.Join(t.TempDir(), "kubeconfig")
	require.NoError(t, clientcmd.WriteToFile(*config, path))
	return path
}

func TestParseKubeconfig(t *testing.T) {
	tests := []struct {
		name        string
		setupFunc   func(t *testing.T) string
		expectError bool
		validate    func(t *testing.T, clusters []Cluster)
	}{
		{
			name: "contexts joined with their cluster entry",
			setupFunc: func(t *testing.T) string {
				config := clientcmdapi.NewConfig()
				config.Clusters["cluster1"] = &clientcmdapi.Cluster{
					Server:                "https://cluster1.example.com",
					CertificateAuthority:  "/etc/ca.crt",
					InsecureSkipTLSVerify: false,
				}
				config.Clusters["cluster2"] = &clientcmdapi.Cluster{
					Server:                "https://cluster2.example.com",
					InsecureSkipTLSVerify: true,
				}
				config.AuthInfos["user1"] = &clientcmdapi.AuthInfo{Token: "token1"}
				config.Contexts["ctx-beta"] = &clientcmdapi.Context{
					Cluster:   "cluster2",
					AuthInfo:  "user1",
					Namespace: "kube-system",
				}
				config.Contexts["ctx-alpha"] = &clientcmdapi.Context{
					Cluster:   "cluster1",
					AuthInfo:  "user1",
					Namespace: "default",
				}

				path := filepath.Join(t.TempDir(), "kubeconfig")
				require.NoError(t, clientcmd.WriteToFile(*config, path))
				return path
			},
			validate: func(t *testing.T, clusters []Cluster) {
				require.Len(t, clusters, 2)

				assert.Equal(t, Cluster{
					Name:                 "ctx-alpha",
					ClusterName:          "cluster1",
					Server:               "https://cluster1.example.com",
					User:                 "user1",
					Namespace:            "default",
					CertificateAuthority: "/etc/ca.crt",
				}, clusters[0])

				assert.Equal(t, "ctx-beta", clusters[1].Name)
				assert.Equal(t, "https://cluster2.example.com", clusters[1].Server)
				assert.True(t, clusters[1].InsecureSkipTLSVerify)
			},
		},
		{
			name: "context pointing to a missing cluster keeps an empty server",
			setupFunc: func(t *testing.T) string {
				config := clientcmdapi.NewConfig()
				config.Contexts["dangling"] = &clientcmdapi.Context{Cluster: "gone"}

				path := filepath.Join(t.TempDir(), "kubeconfig")
				require.NoError(t, clientcmd.WriteToFile(*config, path))
				return path
			},
			validate: func(t *testing.T, clusters []Cluster) {
				require.Len(t, clusters, 1)
				assert.Equal(t, "gone", clusters[0].ClusterName)
				assert.Empty(t, clusters[0].Server)
			},
		},
		{
			name: "invalid kubeconfig path",
			setupFunc: func(t *testing.T) string {
				return "/nonexistent/path/kubeconfig"
			},
			expectError: true,
		},
		{
			name: "empty kubeconfig",
			setupFunc: func(t *testing.T) string {
				return writeKubeconfig(t, "")
			},
			validate: func(t *testing.T, clusters []Cluster) {
				assert.Empty(t, clusters)
			},
		},
		{
			name: "sorted regardless of insertion order",
			setupFunc: func(t *testing.T) string {
				return writeKubeconfig(t, "xray", "zulu", "yankee", "xray", "alpha", "bravo")
			},
			validate: func(t *testing.T, clusters []Cluster) {
				names := make([]string, len(clusters))
				for i, c := range clusters {
					names[i] = c.Name
				}
				assert.Equal(t, []string{"alpha", "bravo", "xray", "yankee", "zulu"}, names)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clusters, err := parseKubeconfig(newLoadingRules(tt.setupFunc(t)))
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, clusters)
			}
		})
	}
}

func TestGetCurrentContext(t *testing.T) {
	path := writeKubeconfig(t, "staging", "dev", "staging")

	current, err := getCurrentContext(newLoadingRules(path))
	require.NoError(t, err)
	assert.Equal(t, "staging", current)

	_, err = getCurrentContext(newLoadingRules("/nonexistent/kubeconfig"))
	assert.Error(t, err)
}

func TestSetCurrentContext(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		expectError error
		wantCurrent string
	}{
		{name: "switch to existing context", target: "prod", wantCurrent: "prod"},
		{name: "already current", target: "dev", wantCurrent: "dev"},
		{name: "unknown context", target: "missing", expectError: ErrContextNotFound, wantCurrent: "dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeKubeconfig(t, "dev", "dev", "prod")

			err := setCurrentContext(newLoadingRules(path), tt.target)
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
			} else {
				require.NoError(t, err)
			}

			current, err := getCurrentContext(newLoadingRules(path))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCurrent, current)
		})
	}
}

func TestNewLoadingRules(t *testing.T) {
	t.Run("explicit path is read alone", func(t *testing.T) {
		explicit := writeKubeconfig(t, "dev", "dev")
		t.Setenv(clientcmd.RecommendedConfigPathEnvVar, writeKubeconfig(t, "prod", "prod"))

		clusters, err := parseKubeconfig(newLoadingRules(explicit))
		require.NoError(t, err)
		require.Len(t, clusters, 1)
		assert.Equal(t, "dev", clusters[0].Name)
	})

	t.Run("every KUBECONFIG entry is merged", func(t *testing.T) {
		first := writeKubeconfig(t, "dev", "dev")
		second := writeKubeconfig(t, "prod", "prod", "staging")
		t.Setenv(clientcmd.RecommendedConfigPathEnvVar, first+string(filepath.ListSeparator)+second)

		clusters, err := parseKubeconfig(newLoadingRules(""))
		require.NoError(t, err)
		names := make([]string, len(clusters))
		for i, c := range clusters {
			names[i] = c.Name
		}
		assert.Equal(t, []string{"dev", "prod", "staging"}, names)

		current, err := getCurrentContext(newLoadingRules(""))
		require.NoError(t, err)
		assert.Equal(t, "dev", current, "first file to set current-context wins")
	})

	t.Run("missing KUBECONFIG entries are skipped", func(t *testing.T) {
		only := writeKubeconfig(t, "dev", "dev")
		t.Setenv(clientcmd.RecommendedConfigPathEnvVar,
			filepath.Join(t.TempDir(), "missing")+string(filepath.ListSeparator)+only)

		clusters, err := parseKubeconfig(newLoadingRules(""))
		require.NoError(t, err)
		require.Len(t, clusters, 1)
	})
}
