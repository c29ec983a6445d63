package bootstrap

import "time"

const (
	// AppLabelKey is the label carrying the workload name on pods, selectors and services.
	AppLabelKey = "app"

	ServiceNameSuffix      = "-service"
	ScaledObjectNameSuffix = "-scaledobject"

	DefaultNamespace             = "default"
	DefaultReplicas        int32 = 2
	DefaultContainerPort   int32 = 80
	DefaultMinReplicaCount int32 = 1

	DefaultCPURequest    = "100m"
	DefaultCPULimit      = "200m"
	DefaultMemoryRequest = "128Mi"
	DefaultMemoryLimit   = "256Mi"

	TriggerTypeCPU           = "cpu"
	TriggerTypeMemory        = "memory"
	MetricTypeUtilization    = "Utilization"
	DefaultUtilizationTarget = "50"

	// maxUtilizationTarget bounds a Utilization trigger value (percent).
	maxUtilizationTarget = 100
)

// KEDA installation defaults.
const (
	DefaultAutoscalerNamespace        = "keda"
	DefaultAutoscalerRelease          = "keda"
	DefaultAutoscalerChart            = "kedacore/keda"
	DefaultAutoscalerRepoName         = "kedacore"
	DefaultAutoscalerRepoURL          = "https://kedacore.github.io/charts"
	DefaultAutoscalerPodLabelSelector = "app.kubernetes.io/instance=keda"
)

const (
	DefaultPodPollInterval = 10 * time.Second
	DefaultPodWaitTimeout  = 300 * time.Second
)
