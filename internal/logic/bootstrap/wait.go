package bootstrap

import (
	"context"
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/util/wait"
)

// WaitForPodsCommand polls the pods matching labelSelector until every one of them
// is in the Running phase or timeout elapses. The first poll is immediate.
func (s *Service) WaitForPodsCommand(
	ctx context.Context,
	namespace,
	labelSelector string,
	timeout time.Duration,
) error {
	logger := s.logger.With(
		"controller", "WaitForPodsCommand",
		"namespace", namespace,
		"labelSelector", labelSelector,
	)

	logger.InfoContext(ctx, "waiting for pods to be running", "timeout", timeout)

	start := time.Now()

	var notReady []string

	err := wait.PollUntilContextTimeout(ctx, s.pollInterval, timeout, true,
		func(ctx context.Context) (bool, error) {
			pods, err := s.repo.ListPodsQuery(ctx, namespace, labelSelector)
			if err != nil {
				// the deadline hit during the call, let the poller report it
				if ctx.Err() != nil {
					return false, nil
				}

				return false, fmt.Errorf("%w: list pods: %w", ErrAPI, err)
			}

			notReady = notRunning(pods)
			if len(notReady) == 0 {
				return true, nil
			}

			logger.InfoContext(ctx, "waiting for pods", "notReady", notReady)

			return false, nil
		},
	)

	s.recorder.RecordPodWait(namespace, time.Since(start), err)

	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("wait for pods: %w", ctx.Err())
		}

		if wait.Interrupted(err) {
			logger.ErrorContext(ctx, "timeout waiting for pods", "notReady", notReady)

			return fmt.Errorf("%w: %s in namespace %s after %s: not running %v",
				ErrTimeout, labelSelector, namespace, timeout, notReady)
		}

		logger.ErrorContext(ctx, "failed waiting for pods", "reason", err)

		return err
	}

	logger.InfoContext(ctx, "all pods are running", "duration", time.Since(start).Round(time.Millisecond))

	return nil
}

func notRunning(pods []Pod) []string {
	names := make([]string, 0, len(pods))

	for i := range pods {
		if pods[i].Phase != PodRunning {
			names = append(names, pods[i].Name)
		}
	}

	return names
}
