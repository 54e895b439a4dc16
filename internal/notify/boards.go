package notify

import (
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/salahapp/salah-server/internal/model"
	"github.com/salahapp/salah-server/internal/schedule"
)

// BoardNotifier pushes refreshed daily schedules to the prayer display
// boards mounted inside masjids. Boards subscribe to their masjid's topic
// and repaint on every retained message.
type BoardNotifier struct {
	client   mqtt.Client
	resolver *schedule.Resolver
}

func scheduleTopic(masjidID int) string {
	return fmt.Sprintf("masjid/%d/schedule", masjidID)
}

// NewBoardNotifier connects to the broker. Returns an error when the broker
// is unreachable; callers may run without a notifier (nil receiver is safe).
func NewBoardNotifier(brokerURL string, resolver *schedule.Resolver) (*BoardNotifier, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID("salah-server")
	opts.SetAutoReconnect(true)
	opts.OnConnect = func(mqtt.Client) {
		log.Info().Str("broker", brokerURL).Msg("connected to MQTT broker")
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		log.Error().Err(err).Msg("MQTT connection lost")
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return &BoardNotifier{client: client, resolver: resolver}, nil
}

// PublishSchedule resolves the masjid's schedule for the current day and
// publishes it retained, so a board that powers on later still gets the
// latest state. Failures are logged, never surfaced: board refresh is
// best-effort and must not fail the admin write that triggered it.
func (n *BoardNotifier) PublishSchedule(masjidID int, today model.Date) {
	if n == nil {
		return
	}

	ds, err := n.resolver.DailySchedule(masjidID, today)
	if err != nil {
		log.Error().Err(err).Int("masjid_id", masjidID).Msg("board publish: schedule resolution failed")
		return
	}

	payload, err := json.Marshal(ds)
	if err != nil {
		log.Error().Err(err).Int("masjid_id", masjidID).Msg("board publish: marshal failed")
		return
	}

	token := n.client.Publish(scheduleTopic(masjidID), 1, true, payload)
	token.Wait()
	if token.Error() != nil {
		log.Error().Err(token.Error()).Int("masjid_id", masjidID).Msg("board publish failed")
	}
}
