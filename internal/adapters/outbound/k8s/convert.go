package k8s

import (
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/apimachinery/pkg/util/intstr"

	"github.com/skillcoder/autoscale-bootstrap/internal/logic/bootstrap"
)

const (
	scaledObjectGroup   = "keda.sh"
	scaledObjectVersion = "v1alpha1"
	scaledObjectKind    = "ScaledObject"
)

// ScaledObjectGVR identifies the KEDA ScaledObject custom resource.
var ScaledObjectGVR = schema.GroupVersionResource{
	Group:    scaledObjectGroup,
	Version:  scaledObjectVersion,
	Resource: "scaledobjects",
}

// BuildNamespace creates a Namespace carrying only its name.
func BuildNamespace(name string) *corev1.Namespace {
	return &corev1.Namespace{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Namespace",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name: name,
		},
	}
}

// BuildDeployment creates the Deployment of a workload: one container named after
// the workload, selector and template labels app=<name>.
func BuildDeployment(w bootstrap.Workload) *appsv1.Deployment {
	replicas := w.Replicas
	labels := w.Labels()

	return &appsv1.Deployment{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "apps/v1",
			Kind:       "Deployment",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      w.Name,
			Namespace: w.Namespace,
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: &replicas,
			Selector: &metav1.LabelSelector{
				MatchLabels: labels,
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: w.Labels(),
				},
				Spec: corev1.PodSpec{
					Containers: []corev1.Container{
						{
							Name:  w.Name,
							Image: w.Image,
							Resources: corev1.ResourceRequirements{
								Requests: corev1.ResourceList{
									corev1.ResourceCPU:    w.Resources.CPURequest,
									corev1.ResourceMemory: w.Resources.MemoryRequest,
								},
								Limits: corev1.ResourceList{
									corev1.ResourceCPU:    w.Resources.CPULimit,
									corev1.ResourceMemory: w.Resources.MemoryLimit,
								},
							},
							Ports: buildContainerPorts(w.Ports),
						},
					},
				},
			},
		},
	}
}

// BuildService creates the Service exposing a workload, port i forwarding to targetPort i.
func BuildService(s bootstrap.ServiceSpec) *corev1.Service {
	return &corev1.Service{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "Service",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name:      s.Name,
			Namespace: s.Namespace,
		},
		Spec: corev1.ServiceSpec{
			Type:     corev1.ServiceType(s.Type),
			Selector: s.Selector,
			Ports:    buildServicePorts(s.Ports),
		},
	}
}

// BuildScaledObject creates the KEDA ScaledObject scaling the workload Deployment.
func BuildScaledObject(s bootstrap.ScaledObjectSpec) *unstructured.Unstructured {
	triggers := make([]any, 0, len(s.Triggers))
	for _, t := range s.Triggers {
		triggers = append(triggers, map[string]any{
			"type": t.Type,
			"metadata": map[string]any{
				"type":  t.MetricType,
				"value": t.Value,
			},
		})
	}

	return &unstructured.Unstructured{
		Object: map[string]any{
			"apiVersion": scaledObjectGroup + "/" + scaledObjectVersion,
			"kind":       scaledObjectKind,
			"metadata": map[string]any{
				"name":      s.Name,
				"namespace": s.Namespace,
			},
			"spec": map[string]any{
				"scaleTargetRef": map[string]any{
					"name": s.ScaleTargetName,
				},
				"minReplicaCount": int64(s.MinReplicaCount),
				"triggers":        triggers,
			},
		},
	}
}

func buildContainerPorts(ports []int32) []corev1.ContainerPort {
	out := make([]corev1.ContainerPort, 0, len(ports))
	for _, port := range ports {
		out = append(out, corev1.ContainerPort{
			ContainerPort: port,
			Protocol:      corev1.ProtocolTCP,
		})
	}

	return out
}

// buildServicePorts names ports only when there are several, as the API requires.
func buildServicePorts(ports []int32) []corev1.ServicePort {
	out := make([]corev1.ServicePort, 0, len(ports))
	for _, port := range ports {
		sp := corev1.ServicePort{
			Port:       port,
			TargetPort: intstr.FromInt32(port),
			Protocol:   corev1.ProtocolTCP,
		}

		if len(ports) > 1 {
			sp.Name = fmt.Sprintf("tcp-%d", port)
		}

		out = append(out, sp)
	}

	return out
}

func toDomainPod(pod *corev1.Pod) bootstrap.Pod {
	return bootstrap.Pod{
		Name:      pod.Name,
		Namespace: pod.Namespace,
		Phase:     bootstrap.PodPhase(pod.Status.Phase),
	}
}
