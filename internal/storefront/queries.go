package storefront

const productsQuery = `
  query Products {
    products(first: 40) {
      nodes {
        id
        title
        media(first: 10) {
          nodes {
            ... on MediaImage {
              image {
                url
                altText
              }
            }
          }
        }
        variants(first: 10) {
          nodes {
            id
            title
            price {
              amount
            }
            image {
              url
              altText
            }
          }
        }
      }
    }
  }
`

const createCartMutation = `
  mutation CreateCart {
    cartCreate {
      cart {
        id
      }
    }
  }
`

const addToCartMutation = `
  mutation AddToCart($cartId: ID!, $lines: [CartLineInput!]!) {
    cartLinesAdd(cartId: $cartId, lines: $lines) {
      cart {
        id
        checkoutUrl
        lines(first: 10) {
          edges {
            node {
              id
              quantity
              merchandise {
                ... on ProductVariant {
                  id
                  title
                }
              }
            }
          }
        }
      }
      userErrors {
        field
        message
      }
    }
  }
`
