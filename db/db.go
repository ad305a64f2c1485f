package db

import (
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"

	"github.com/chordcraft/chordcraft/constants"
	"github.com/chordcraft/chordcraft/model"
)

// GetFeaturedChords fetches curated chord definitions by name. DynamoDB
// caps BatchGetItem at a small batch, so callers pass at most 10 names.
func GetFeaturedChords(names []string) (map[string]model.FeaturedChord, error) {
	res := make(map[string]model.FeaturedChord)
	if len(names) == 0 {
		return res, nil
	}
	if len(names) > 10 {
		panic("Not supposed to pass in more than 10 names!")
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, name := range names {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(name),
		}
		keys = append(keys, key)
	}

	endpoint := constants.GetDynamoEndpoint()
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		return nil, err
	}

	table := constants.GetFeaturedTable()
	client := dynamodb.New(sess)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			table: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		return nil, err
	}

	for _, v := range dbres.Responses[table] {
		var f model.FeaturedChord
		f.Name = *v["PK"].S
		f.Root = *v["Root"].S
		f.Symbol = *v["Symbol"].S
		if v["Notes"] != nil && v["Notes"].S != nil {
			f.CustomNotes = strings.Fields(*v["Notes"].S)
		}
		res[f.Name] = f
	}

	return res, nil
}
