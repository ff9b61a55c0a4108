package utils

import (
	"log"

	"telecare/config"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// MQTTClient is the global broker connection used for in-app notifications.
var MQTTClient mqtt.Client

// InitMQTT connects to the configured MQTT broker.
func InitMQTT() {
	opts := mqtt.NewClientOptions().
		AddBroker(config.AppConfig.MQTTBrokerURL).
		SetClientID(config.AppConfig.MQTTClientID).
		SetAutoReconnect(true)
	if config.AppConfig.MQTTUsername != "" {
		opts.SetUsername(config.AppConfig.MQTTUsername)
		opts.SetPassword(config.AppConfig.MQTTPassword)
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("Failed to connect to MQTT broker: %v", token.Error())
	}
	MQTTClient = client
	log.Println("Connected to MQTT broker successfully!")
}

// GetMQTTClient returns the global MQTT client.
func GetMQTTClient() mqtt.Client {
	if MQTTClient == nil {
		InitMQTT()
	}
	return MQTTClient
}
