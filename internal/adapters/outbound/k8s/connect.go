package k8s

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	metricsv "k8s.io/metrics/pkg/client/clientset/versioned"

	"github.com/skillcoder/autoscale-bootstrap/internal/logic/bootstrap"
)

// Clients is the authenticated connection to one cluster.
type Clients struct {
	Kubernetes    kubernetes.Interface
	Dynamic       dynamic.Interface
	Metrics       metricsv.Interface
	Host          string
	ServerVersion string
}

// Connect loads credentials and checks the API server answers. kubeConfigPath
// may be a KUBECONFIG-style list. An empty kubeConfigPath means ~/.kube/config,
// or in-cluster credentials when that file does not exist. Every failure wraps bootstrap.ErrConnectionFailed.
func Connect(
	ctx context.Context,
	logger *slog.Logger,
	kubeConfigPath,
	master string,
) (*Clients, error) {
	paths, err := resolveKubeConfigPaths(kubeConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", bootstrap.ErrConnectionFailed, err)
	}

	restConfig, err := buildRestConfig(master, paths)
	if err != nil {
		return nil, fmt.Errorf("%w: build k8s config: %w", bootstrap.ErrConnectionFailed, err)
	}

	clients, err := newClients(restConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", bootstrap.ErrConnectionFailed, err)
	}

	version, err := clients.Kubernetes.Discovery().ServerVersion()
	if err != nil {
		return nil, fmt.Errorf("%w: api server %s unreachable: %w", bootstrap.ErrConnectionFailed, restConfig.Host, err)
	}

	clients.ServerVersion = version.GitVersion

	logger.InfoContext(ctx, "connected to the kubernetes cluster",
		"host", clients.Host,
		"serverVersion", clients.ServerVersion,
		"kubeconfig", paths,
	)

	return clients, nil
}

func newClients(restConfig *rest.Config) (*Clients, error) {
	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("create clientset: %w", err)
	}

	dynamicClient, err := dynamic.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("create dynamic client: %w", err)
	}

	metricsClientset, err := metricsv.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("create metrics clientset: %w", err)
	}

	return &Clients{
		Kubernetes: clientset,
		Dynamic:    dynamicClient,
		Metrics:    metricsClientset,
		Host:       restConfig.Host,
	}, nil
}

// buildRestConfig merges the kubeconfig files in order, first file wins, as
// kubectl does with a KUBECONFIG list. No files means in-cluster credentials.
func buildRestConfig(master string, paths []string) (*rest.Config, error) {
	if len(paths) == 0 {
		return clientcmd.BuildConfigFromFlags(master, "")
	}

	rules := &clientcmd.ClientConfigLoadingRules{Precedence: paths}
	overrides := &clientcmd.ConfigOverrides{}
	overrides.ClusterInfo.Server = master

	return clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, overrides).ClientConfig()
}

// resolveKubeConfigPaths splits kubeConfigPath like KUBECONFIG. Missing entries of
// a list are skipped, but at least one must exist. The default path is used only
// when present; otherwise no paths let clientcmd fall back to in-cluster config.
func resolveKubeConfigPaths(kubeConfigPath string) ([]string, error) {
	if kubeConfigPath != "" {
		var (
			paths    []string
			firstErr error
		)

		for _, path := range filepath.SplitList(kubeConfigPath) {
			if path == "" {
				continue
			}

			_, err := os.Stat(path)
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("kubeconfig %s: %w", path, err)
				}

				continue
			}

			paths = append(paths, path)
		}

		if len(paths) == 0 {
			if firstErr == nil {
				firstErr = fmt.Errorf("kubeconfig %q: %w", kubeConfigPath, os.ErrNotExist)
			}

			return nil, firstErr
		}

		return paths, nil
	}

	_, err := os.Stat(clientcmd.RecommendedHomeFile)
	if err == nil {
		return []string{clientcmd.RecommendedHomeFile}, nil
	}

	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("kubeconfig %s: %w", clientcmd.RecommendedHomeFile, err)
	}

	return nil, nil
}
