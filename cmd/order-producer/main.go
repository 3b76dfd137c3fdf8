package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	orderreaderv1 "github.com/luca-simonetti/exchange-core/internal/domain/order-reader/v1"
	orderbookv1 "github.com/luca-simonetti/exchange-core/internal/domain/orderbook/v1"
	"github.com/segmentio/kafka-go"
)

// generateCommands creates a stream of realistic order commands around a
// base price.
func generateCommands(count int, basePrice int64, priceSpread int64) []orderreaderv1.PlaceOrderPayload {
	commands := make([]orderreaderv1.PlaceOrderPayload, count)

	for i := 0; i < count; i++ {
		// Command mix: 65% GTC, 25% IOC, 10% cancel
		cmdType := orderreaderv1.TypeGTC
		roll := rand.Float64()
		if roll < 0.25 {
			cmdType = orderreaderv1.TypeIOC
		} else if roll < 0.35 && i > 10 {
			cmdType = orderreaderv1.TypeCancel
		}

		orderID := int64(i + 1)
		uid := int64(rand.Intn(500) + 1)

		if cmdType == orderreaderv1.TypeCancel {
			// Cancel a previously sent id; the book rejects ids that
			// already matched away, which is fine for load generation.
			commands[i] = orderreaderv1.PlaceOrderPayload{
				Type:    cmdType,
				OrderID: int64(rand.Intn(i) + 1),
				UID:     uid,
				Offset:  int64(i + 1),
			}
			continue
		}

		isBid := rand.Float64() < 0.5
		action := orderreaderv1.ActionAsk
		if isBid {
			action = orderreaderv1.ActionBid
		}

		size := int64(rand.Intn(100) + 1)

		var price int64
		if isBid {
			price = basePrice - rand.Int63n(priceSpread)
		} else {
			price = basePrice + rand.Int63n(priceSpread)
		}
		if price <= 0 {
			price = basePrice
		}

		// Occasionally a market-style IOC sweeping at any price
		if cmdType == orderreaderv1.TypeIOC && rand.Float64() < 0.3 {
			price = 0
		}

		payload := orderreaderv1.PlaceOrderPayload{
			Type:            cmdType,
			OrderID:         orderID,
			UID:             uid,
			Price:           price,
			ReserveBidPrice: price,
			Size:            size,
			Action:          action,
			Offset:          int64(i + 1),
		}

		// A slice of GTC bids carry a stop-loss below the market
		if cmdType == orderreaderv1.TypeGTC && isBid && rand.Float64() < 0.1 {
			low := basePrice - priceSpread - rand.Int63n(priceSpread)
			if low <= 0 {
				low = 1
			}
			payload.StopLoss = &orderbookv1.Range{
				Low:  low,
				High: basePrice - rand.Int63n(priceSpread),
			}
		}

		commands[i] = payload
	}

	return commands
}

func main() {
	var (
		brokers     = flag.String("brokers", "localhost:9092", "Kafka broker addresses (comma-separated)")
		topic       = flag.String("topic", "order-commands", "Kafka topic name")
		file        = flag.String("file", "", "JSON file with commands (optional, generates commands if not provided)")
		delay       = flag.Duration("delay", 100*time.Millisecond, "Delay between sending commands")
		count       = flag.Int("count", 1000, "Number of commands to generate")
		basePrice   = flag.Int64("base-price", 50000, "Base price for orders")
		priceSpread = flag.Int64("price-spread", 500, "Price spread range")
	)
	flag.Parse()

	rand.Seed(time.Now().UnixNano())

	writer := &kafka.Writer{
		Addr:         kafka.TCP(*brokers),
		Topic:        *topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}
	defer writer.Close()

	ctx := context.Background()

	var commands []orderreaderv1.PlaceOrderPayload
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			log.Fatalf("Failed to read file %s: %v", *file, err)
		}
		if err := json.Unmarshal(data, &commands); err != nil {
			log.Fatalf("Failed to parse JSON from file: %v", err)
		}
		log.Printf("Loaded %d commands from file: %s", len(commands), *file)
	} else {
		log.Printf("Generating %d commands...", *count)
		commands = generateCommands(*count, *basePrice, *priceSpread)
	}

	log.Printf("Sending commands to Kafka broker: %s, topic: %s", *brokers, *topic)
	log.Printf("Delay between commands: %v", *delay)

	for i, cmd := range commands {
		payload, err := json.Marshal(cmd)
		if err != nil {
			log.Printf("Failed to marshal command %d: %v", i+1, err)
			continue
		}

		msg := kafka.Message{
			Value: payload,
			Time:  time.Now(),
		}

		if err := writer.WriteMessages(ctx, msg); err != nil {
			log.Printf("Failed to send command %d (order %d): %v", i+1, cmd.OrderID, err)
			continue
		}

		if (i+1)%100 == 0 || i == len(commands)-1 {
			log.Printf("Sent command %d/%d: %s %s order %d size %d @ %d",
				i+1, len(commands), cmd.Type, cmd.Action, cmd.OrderID, cmd.Size, cmd.Price)
		}

		if i < len(commands)-1 {
			time.Sleep(*delay)
		}
	}

	log.Printf("Successfully sent all %d commands!", len(commands))

	gtc, ioc, cancels, bids, asks, conditional := 0, 0, 0, 0, 0, 0
	for _, cmd := range commands {
		switch cmd.Type {
		case orderreaderv1.TypeGTC:
			gtc++
		case orderreaderv1.TypeIOC:
			ioc++
		case orderreaderv1.TypeCancel:
			cancels++
		}
		switch cmd.Action {
		case orderreaderv1.ActionBid:
			bids++
		case orderreaderv1.ActionAsk:
			asks++
		}
		if cmd.StopLoss != nil || cmd.TakeProfit != nil {
			conditional++
		}
	}

	log.Printf("--- Summary ---")
	log.Printf("Total Commands: %d", len(commands))
	log.Printf("GTC: %d, IOC: %d, Cancels: %d", gtc, ioc, cancels)
	log.Printf("Bids: %d, Asks: %d", bids, asks)
	log.Printf("Conditional Orders: %d", conditional)
}
