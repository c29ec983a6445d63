package k8s

import (
	"context"
	"fmt"
	"log/slog"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	metricsv "k8s.io/metrics/pkg/client/clientset/versioned"

	"github.com/skillcoder/autoscale-bootstrap/internal/logic/bootstrap"
)

type adapter struct {
	logger           *slog.Logger
	clientset        kubernetes.Interface
	dynamicClient    dynamic.Interface
	metricsClientset metricsv.Interface
}

// New creates a new K8s adapter.
func New(
	logger *slog.Logger,
	clientset kubernetes.Interface,
	dynamicClient dynamic.Interface,
	metricsClientset metricsv.Interface,
) bootstrap.Repository {
	return &adapter{
		logger:           logger.With("component", "k8s-adapter"),
		clientset:        clientset,
		dynamicClient:    dynamicClient,
		metricsClientset: metricsClientset,
	}
}

var _ bootstrap.Repository = (*adapter)(nil)

func (a *adapter) GetNamespaceQuery(
	ctx context.Context,
	name string,
) error {
	_, err := a.clientset.CoreV1().Namespaces().Get(ctx, name, metav1.GetOptions{})

	return getError("namespace", "", name, err)
}

func (a *adapter) CreateNamespaceCommand(
	ctx context.Context,
	name string,
) error {
	_, err := a.clientset.CoreV1().Namespaces().Create(ctx, BuildNamespace(name), metav1.CreateOptions{})
	if err != nil {
		return fmt.Errorf("create namespace: %w", err)
	}

	return nil
}

func (a *adapter) GetDeploymentQuery(
	ctx context.Context,
	namespace,
	name string,
) error {
	_, err := a.clientset.AppsV1().Deployments(namespace).Get(ctx, name, metav1.GetOptions{})

	return getError("deployment", namespace, name, err)
}

func (a *adapter) CreateDeploymentCommand(
	ctx context.Context,
	workload bootstrap.Workload,
) error {
	deployment := BuildDeployment(workload)

	_, err := a.clientset.AppsV1().Deployments(deployment.Namespace).Create(ctx, deployment, metav1.CreateOptions{})
	if err != nil {
		return fmt.Errorf("create deployment: %w", err)
	}

	return nil
}

func (a *adapter) GetServiceQuery(
	ctx context.Context,
	namespace,
	name string,
) error {
	_, err := a.clientset.CoreV1().Services(namespace).Get(ctx, name, metav1.GetOptions{})

	return getError("service", namespace, name, err)
}

func (a *adapter) CreateServiceCommand(
	ctx context.Context,
	service bootstrap.ServiceSpec,
) error {
	svc := BuildService(service)

	_, err := a.clientset.CoreV1().Services(svc.Namespace).Create(ctx, svc, metav1.CreateOptions{})
	if err != nil {
		return fmt.Errorf("create service: %w", err)
	}

	return nil
}

func (a *adapter) GetScaledObjectQuery(
	ctx context.Context,
	namespace,
	name string,
) error {
	_, err := a.dynamicClient.Resource(ScaledObjectGVR).Namespace(namespace).Get(ctx, name, metav1.GetOptions{})

	return getError("scaledobject", namespace, name, err)
}

func (a *adapter) CreateScaledObjectCommand(
	ctx context.Context,
	scaledObject bootstrap.ScaledObjectSpec,
) error {
	obj := BuildScaledObject(scaledObject)

	_, err := a.dynamicClient.Resource(ScaledObjectGVR).Namespace(scaledObject.Namespace).Create(
		ctx,
		obj,
		metav1.CreateOptions{},
	)
	if err != nil {
		return fmt.Errorf("create scaledobject: %w", err)
	}

	return nil
}

func (a *adapter) ListPodsQuery(
	ctx context.Context,
	namespace,
	labelSelector string,
) ([]bootstrap.Pod, error) {
	podList, err := a.clientset.CoreV1().Pods(namespace).List(
		ctx,
		metav1.ListOptions{
			LabelSelector: labelSelector,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("list pods: %w", err)
	}

	pods := make([]bootstrap.Pod, 0, len(podList.Items))
	for i := range podList.Items {
		pods = append(pods, toDomainPod(&podList.Items[i]))
	}

	return pods, nil
}

func (a *adapter) ResourceMetricsQuery(
	ctx context.Context,
	namespace string,
) error {
	podMetrics, err := a.metricsClientset.MetricsV1beta1().PodMetricses(namespace).List(
		ctx,
		metav1.ListOptions{Limit: 1},
	)
	if err != nil {
		return fmt.Errorf("list pod metrics: %w", err)
	}

	a.logger.DebugContext(ctx, "resource metrics api available",
		"namespace", namespace,
		"podMetrics", len(podMetrics.Items),
	)

	return nil
}

func getError(resource, namespace, name string, err error) error {
	if err == nil {
		return nil
	}

	if apierrors.IsNotFound(err) {
		return fmt.Errorf("get %s: %w", resource, &NotFoundError{
			Resource:  resource,
			Namespace: namespace,
			Name:      name,
		})
	}

	return fmt.Errorf("get %s: %w", resource, err)
}
